package api

import (
	"github.com/google/uuid"
	"github.com/vortexlabs/portfolio-backend/models"
	"gorm.io/datatypes"
)

// In-memory store fakes backing the handler tests. They mirror the
// repo contracts: lookups return (nil, nil) when nothing matches and
// Delete reports whether a row existed.

type fakeUserStore struct {
	users map[uuid.UUID]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uuid.UUID]models.User{}}
}

func (f *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserStore) Add(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Role == "" {
		user.Role = models.DefaultUserRole
	}
	f.users[user.ID] = *user
	return nil
}

type fakeCategoryStore struct {
	categories map[uuid.UUID]models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[uuid.UUID]models.Category{}}
}

func (f *fakeCategoryStore) FindAll() ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	if c, ok := f.categories[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (f *fakeCategoryStore) Add(category *models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	if category.Color == "" {
		category.Color = models.DefaultCategoryColor
	}
	f.categories[category.ID] = *category
	return nil
}

func (f *fakeCategoryStore) Update(id uuid.UUID, update models.CategoryUpdate) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Slug != nil {
		c.Slug = *update.Slug
	}
	if update.Color != nil {
		c.Color = *update.Color
	}
	if update.Description.Set {
		c.Description = update.Description.Ptr()
	}
	f.categories[id] = c
	return &c, nil
}

func (f *fakeCategoryStore) Delete(id uuid.UUID) (bool, error) {
	if _, ok := f.categories[id]; !ok {
		return false, nil
	}
	delete(f.categories, id)
	return true, nil
}

type fakeToolStore struct {
	tools map[uuid.UUID]models.Tool
}

func newFakeToolStore() *fakeToolStore {
	return &fakeToolStore{tools: map[uuid.UUID]models.Tool{}}
}

func (f *fakeToolStore) FindAll() ([]models.Tool, error) {
	out := []models.Tool{}
	for _, tool := range f.tools {
		out = append(out, tool)
	}
	return out, nil
}

func (f *fakeToolStore) FindByCategory(categoryID uuid.UUID) ([]models.Tool, error) {
	out := []models.Tool{}
	for _, tool := range f.tools {
		if tool.CategoryID != nil && *tool.CategoryID == categoryID {
			out = append(out, tool)
		}
	}
	return out, nil
}

func (f *fakeToolStore) FindByID(id uuid.UUID) (*models.Tool, error) {
	if tool, ok := f.tools[id]; ok {
		return &tool, nil
	}
	return nil, nil
}

func (f *fakeToolStore) Add(tool *models.Tool) error {
	if tool.ID == uuid.Nil {
		tool.ID = uuid.New()
	}
	f.tools[tool.ID] = *tool
	return nil
}

func (f *fakeToolStore) Update(id uuid.UUID, update models.ToolUpdate) (*models.Tool, error) {
	tool, ok := f.tools[id]
	if !ok {
		return nil, nil
	}
	if update.Name != nil {
		tool.Name = *update.Name
	}
	if update.Slug != nil {
		tool.Slug = *update.Slug
	}
	if update.CategoryID.Set {
		tool.CategoryID = update.CategoryID.Ptr()
	}
	if update.Description.Set {
		tool.Description = update.Description.Ptr()
	}
	f.tools[id] = tool
	return &tool, nil
}

func (f *fakeToolStore) Delete(id uuid.UUID) (bool, error) {
	if _, ok := f.tools[id]; !ok {
		return false, nil
	}
	delete(f.tools, id)
	return true, nil
}

type fakeProjectStore struct {
	projects map[uuid.UUID]models.Project
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: map[uuid.UUID]models.Project{}}
}

func (f *fakeProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	if p, ok := f.projects[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeProjectStore) Add(project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.Status == "" {
		project.Status = models.StatusDraft
	}
	f.projects[project.ID] = *project
	return nil
}

func (f *fakeProjectStore) Update(id uuid.UUID, update models.ProjectUpdate, slug *string) (*models.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, nil
	}
	if update.Title != nil {
		p.Title = *update.Title
	}
	if slug != nil {
		p.Slug = *slug
	}
	if update.ShortDescription != nil {
		p.ShortDescription = *update.ShortDescription
	}
	if update.Content != nil {
		p.Content = *update.Content
	}
	if update.Status != nil {
		p.Status = *update.Status
	}
	if update.Links != nil {
		p.Links = datatypes.NewJSONSlice(*update.Links)
	}
	if update.CategoryID.Set {
		p.CategoryID = update.CategoryID.Ptr()
	}
	if update.ToolID.Set {
		p.ToolID = update.ToolID.Ptr()
	}
	if update.ThumbnailURL.Set {
		p.ThumbnailURL = update.ThumbnailURL.Ptr()
	}
	f.projects[id] = p
	return &p, nil
}

func (f *fakeProjectStore) Delete(id uuid.UUID) (bool, error) {
	if _, ok := f.projects[id]; !ok {
		return false, nil
	}
	delete(f.projects, id)
	return true, nil
}

// fakeProjectViews serves pre-assembled composites keyed by id and slug.
type fakeProjectViews struct {
	views map[uuid.UUID]models.ProjectView
}

func newFakeProjectViews() *fakeProjectViews {
	return &fakeProjectViews{views: map[uuid.UUID]models.ProjectView{}}
}

func (f *fakeProjectViews) add(view models.ProjectView) {
	f.views[view.Project.ID] = view
}

func (f *fakeProjectViews) ProjectByID(id uuid.UUID) (*models.ProjectView, error) {
	if v, ok := f.views[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func (f *fakeProjectViews) ProjectBySlug(slug string) (*models.ProjectView, error) {
	for _, v := range f.views {
		if v.Project.Slug == slug {
			v := v
			return &v, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectViews) AllProjects() ([]models.ProjectView, error) {
	out := []models.ProjectView{}
	for _, v := range f.views {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeProjectViews) PublishedProjects() ([]models.ProjectView, error) {
	out := []models.ProjectView{}
	for _, v := range f.views {
		if v.Project.Status == models.StatusPublished {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeImageStore struct {
	images map[uuid.UUID]models.ProjectImage
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{images: map[uuid.UUID]models.ProjectImage{}}
}

func (f *fakeImageStore) FindByProject(projectID uuid.UUID) ([]models.ProjectImage, error) {
	out := []models.ProjectImage{}
	for _, img := range f.images {
		if img.ProjectID == projectID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeImageStore) FindByID(id uuid.UUID) (*models.ProjectImage, error) {
	if img, ok := f.images[id]; ok {
		return &img, nil
	}
	return nil, nil
}

func (f *fakeImageStore) Add(image *models.ProjectImage) error {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	if image.SortOrder == "" {
		image.SortOrder = "0"
	}
	f.images[image.ID] = *image
	return nil
}

func (f *fakeImageStore) Delete(id uuid.UUID) (bool, error) {
	if _, ok := f.images[id]; !ok {
		return false, nil
	}
	delete(f.images, id)
	return true, nil
}
