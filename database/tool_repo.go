package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vortexlabs/portfolio-backend/models"
	"gorm.io/gorm"
)

type ToolRepo struct {
	db *gorm.DB
}

func NewToolRepo(db *gorm.DB) *ToolRepo {
	return &ToolRepo{db}
}

// FindAll returns all tools ordered by name, id as tie-break.
func (r *ToolRepo) FindAll() ([]models.Tool, error) {
	var tools []models.Tool
	err := r.db.Order("name asc, id asc").Find(&tools).Error
	return tools, err
}

// FindByCategory returns the tools referencing a category.
func (r *ToolRepo) FindByCategory(categoryID uuid.UUID) ([]models.Tool, error) {
	var tools []models.Tool
	err := r.db.Where("category_id = ?", categoryID).Order("name asc, id asc").Find(&tools).Error
	return tools, err
}

// FindByID returns a tool by id, or nil when no row matches.
func (r *ToolRepo) FindByID(id uuid.UUID) (*models.Tool, error) {
	var tool models.Tool
	err := r.db.First(&tool, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

// Add inserts a new tool.
func (r *ToolRepo) Add(tool *models.Tool) error {
	if tool.ID == uuid.Nil {
		tool.ID = uuid.New()
	}
	tool.CreatedAt = time.Now()
	return r.db.Create(tool).Error
}

// Update applies a partial merge and returns the updated row, or nil
// when the id does not resolve.
func (r *ToolRepo) Update(id uuid.UUID, update models.ToolUpdate) (*models.Tool, error) {
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
	if update.CategoryID.Set {
		fields["category_id"] = update.CategoryID.Ptr()
	}
	if update.Description.Set {
		fields["description"] = update.Description.Ptr()
	}
	if len(fields) > 0 {
		if err := r.db.Model(&models.Tool{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

// Delete removes the tool and reports whether a row existed.
func (r *ToolRepo) Delete(id uuid.UUID) (bool, error) {
	result := r.db.Delete(&models.Tool{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
