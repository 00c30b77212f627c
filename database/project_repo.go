package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vortexlabs/portfolio-backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects ordered by updated_at, id as tie-break.
func (r *ProjectRepo) FindAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("updated_at asc, id asc").Find(&projects).Error
	return projects, err
}

// FindPublished returns only published projects, same ordering.
func (r *ProjectRepo) FindPublished() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("status = ?", models.StatusPublished).
		Order("updated_at asc, id asc").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by id, or nil when no row matches.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlug returns a project by slug, or nil when no row matches.
func (r *ProjectRepo) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project, stamping creation and update times and
// defaulting the status to draft.
func (r *ProjectRepo) Add(project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.Status == "" {
		project.Status = models.StatusDraft
	}
	if project.Links == nil {
		project.Links = []models.Link{}
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	return r.db.Create(project).Error
}

// Update applies a partial merge, always refreshing updated_at, and
// returns the updated row or nil when the id does not resolve. The
// slug field is supplied by the caller when the title changed.
func (r *ProjectRepo) Update(id uuid.UUID, update models.ProjectUpdate, slug *string) (*models.Project, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}

	fields := map[string]any{"updated_at": time.Now()}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if slug != nil {
		fields["slug"] = *slug
	}
	if update.ShortDescription != nil {
		fields["short_description"] = *update.ShortDescription
	}
	if update.Content != nil {
		fields["content"] = *update.Content
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if update.Links != nil {
		fields["links"] = datatypes.NewJSONSlice(*update.Links)
	}
	if update.CategoryID.Set {
		fields["category_id"] = update.CategoryID.Ptr()
	}
	if update.ToolID.Set {
		fields["tool_id"] = update.ToolID.Ptr()
	}
	if update.ThumbnailURL.Set {
		fields["thumbnail_url"] = update.ThumbnailURL.Ptr()
	}

	if err := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes the project and its images in one transaction so a
// reader never observes the project gone with images still present.
// Reports whether a project row existed.
func (r *ProjectRepo) Delete(id uuid.UUID) (bool, error) {
	existed := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProjectImage{}, "project_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Project{}, "id = ?", id)
		existed = result.RowsAffected > 0
		return result.Error
	})
	return existed, err
}
