package models

import (
	"time"

	"github.com/google/uuid"
)

// Tool is a technology tag that projects may reference.
type Tool struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string     `json:"name" db:"name" gorm:"type:text;not null"`
	Slug        string     `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	CategoryID  *uuid.UUID `json:"categoryId" db:"category_id" gorm:"type:uuid;index"`
	Description *string    `json:"description,omitempty" db:"description" gorm:"type:text"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
}
