package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vortexlabs/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectImageRepo struct {
	db *gorm.DB
}

func NewProjectImageRepo(db *gorm.DB) *ProjectImageRepo {
	return &ProjectImageRepo{db}
}

// FindByProject returns a project's images ordered by their sort key,
// creation time as tie-break.
func (r *ProjectImageRepo) FindByProject(projectID uuid.UUID) ([]models.ProjectImage, error) {
	var images []models.ProjectImage
	err := r.db.Where("project_id = ?", projectID).
		Order("sort_order asc, created_at asc").Find(&images).Error
	return images, err
}

// FindByID returns an image by id, or nil when no row matches.
func (r *ProjectImageRepo) FindByID(id uuid.UUID) (*models.ProjectImage, error) {
	var image models.ProjectImage
	err := r.db.First(&image, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Add inserts a new image with the documented defaults.
func (r *ProjectImageRepo) Add(image *models.ProjectImage) error {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	if image.SortOrder == "" {
		image.SortOrder = "0"
	}
	image.CreatedAt = time.Now()
	return r.db.Create(image).Error
}

// Delete removes the image and reports whether a row existed.
func (r *ProjectImageRepo) Delete(id uuid.UUID) (bool, error) {
	result := r.db.Delete(&models.ProjectImage{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
