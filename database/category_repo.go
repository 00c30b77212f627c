package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vortexlabs/portfolio-backend/models"
	"gorm.io/gorm"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAll returns all categories ordered by name, id as tie-break so
// equal names list deterministically.
func (r *CategoryRepo) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name asc, id asc").Find(&categories).Error
	return categories, err
}

// FindByID returns a category by id, or nil when no row matches.
func (r *CategoryRepo) FindByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Add inserts a new category, applying the default color when absent.
func (r *CategoryRepo) Add(category *models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	if category.Color == "" {
		category.Color = models.DefaultCategoryColor
	}
	category.CreatedAt = time.Now()
	return r.db.Create(category).Error
}

// Update applies a partial merge and returns the updated row, or nil
// when the id does not resolve.
func (r *CategoryRepo) Update(id uuid.UUID, update models.CategoryUpdate) (*models.Category, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}

	fields := map[string]any{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Slug != nil {
		fields["slug"] = *update.Slug
	}
	if update.Color != nil {
		fields["color"] = *update.Color
	}
	if update.Description.Set {
		fields["description"] = update.Description.Ptr()
	}
	if len(fields) > 0 {
		if err := r.db.Model(&models.Category{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

// Delete removes the category and reports whether a row existed.
// References from tools and projects are nulled out by the store's
// ON DELETE SET NULL constraints.
func (r *CategoryRepo) Delete(id uuid.UUID) (bool, error) {
	result := r.db.Delete(&models.Category{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
