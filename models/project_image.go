package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectImage is owned exclusively by its project and is removed when
// the project is deleted. SortOrder is a string-encoded sort key, "0"
// by default, matching how the admin UI reorders gallery entries.
type ProjectImage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;index"`
	URL       string    `json:"url" db:"url" gorm:"type:text;not null"`
	Alt       string    `json:"alt" db:"alt" gorm:"type:text;not null;default:''"`
	SortOrder string    `json:"order" db:"sort_order" gorm:"column:sort_order;type:text;not null;default:'0'"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
