package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the display hint applied when a category is
// created without one.
const DefaultCategoryColor = "#3B82F6"

// Category groups projects and tools under a named, colored label.
type Category struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Color       string    `json:"color" db:"color" gorm:"type:text;not null;default:'#3B82F6'"`
	Description *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
