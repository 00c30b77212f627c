// Package assembler composes project rows with their category, tool,
// author, and images into the read shape the UI consumes. It performs
// no writes: every method is a projection over the store's current
// state at call time.
package assembler

import (
	"github.com/google/uuid"
	"github.com/vortexlabs/portfolio-backend/models"
	"golang.org/x/sync/errgroup"
)

// Store is the read surface the assembler needs. database.Database
// satisfies it; tests provide a fake.
type Store interface {
	ProjectByID(id uuid.UUID) (*models.Project, error)
	ProjectBySlug(slug string) (*models.Project, error)
	AllProjects() ([]models.Project, error)
	PublishedProjects() ([]models.Project, error)
	CategoryByID(id uuid.UUID) (*models.Category, error)
	ToolByID(id uuid.UUID) (*models.Tool, error)
	UserByID(id uuid.UUID) (*models.User, error)
	ImagesByProject(projectID uuid.UUID) ([]models.ProjectImage, error)
}

type Assembler struct {
	store Store
}

func New(store Store) Assembler {
	return Assembler{store: store}
}

// ProjectByID returns the composite for one project, or nil when the
// id does not resolve.
func (a Assembler) ProjectByID(id uuid.UUID) (*models.ProjectView, error) {
	project, err := a.store.ProjectByID(id)
	if err != nil || project == nil {
		return nil, err
	}
	return a.assemble(*project)
}

// ProjectBySlug returns the composite for one project, or nil when
// the slug does not resolve.
func (a Assembler) ProjectBySlug(slug string) (*models.ProjectView, error) {
	project, err := a.store.ProjectBySlug(slug)
	if err != nil || project == nil {
		return nil, err
	}
	return a.assemble(*project)
}

// AllProjects assembles every project in store order.
func (a Assembler) AllProjects() ([]models.ProjectView, error) {
	projects, err := a.store.AllProjects()
	if err != nil {
		return nil, err
	}
	return a.assembleAll(projects)
}

// PublishedProjects assembles only published projects.
func (a Assembler) PublishedProjects() ([]models.ProjectView, error) {
	projects, err := a.store.PublishedProjects()
	if err != nil {
		return nil, err
	}
	return a.assembleAll(projects)
}

func (a Assembler) assembleAll(projects []models.Project) ([]models.ProjectView, error) {
	views := make([]models.ProjectView, 0, len(projects))
	for _, p := range projects {
		view, err := a.assemble(p)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// assemble runs the four reference lookups concurrently; they are
// independent reads. The composite is fully built before returning,
// so callers never observe a partial view. A foreign key pointing at
// a deleted row resolves to absent, not an error.
func (a Assembler) assemble(project models.Project) (*models.ProjectView, error) {
	view := models.ProjectView{Project: project, Images: []models.ProjectImage{}}

	var g errgroup.Group

	if id := project.CategoryID; id != nil {
		g.Go(func() error {
			category, err := a.store.CategoryByID(*id)
			view.Category = category
			return err
		})
	}
	if id := project.ToolID; id != nil {
		g.Go(func() error {
			tool, err := a.store.ToolByID(*id)
			view.Tool = tool
			return err
		})
	}
	if id := project.AuthorID; id != nil {
		g.Go(func() error {
			author, err := a.store.UserByID(*id)
			if err != nil || author == nil {
				return err
			}
			// Mandatory redaction: the hash never leaves the store layer.
			public := author.Public()
			view.Author = &public
			return nil
		})
	}
	g.Go(func() error {
		images, err := a.store.ImagesByProject(project.ID)
		if err != nil {
			return err
		}
		if images != nil {
			view.Images = images
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &view, nil
}
