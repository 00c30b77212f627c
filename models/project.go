package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project lifecycle statuses. There is no enforced state machine: any
// status may follow any other.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidStatus reports whether s is one of the known project statuses.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}

// Link is an external reference attached to a project.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Project is a portfolio entry with markdown documentation.
// Slug is derived from Title and globally unique; it is recomputed
// whenever the title changes on update.
type Project struct {
	ID               uuid.UUID                 `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title            string                    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug             string                    `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	ShortDescription string                    `json:"shortDescription" db:"short_description" gorm:"type:text;not null"`
	Content          string                    `json:"content" db:"content" gorm:"type:text;not null"`
	CategoryID       *uuid.UUID                `json:"categoryId" db:"category_id" gorm:"type:uuid;index"`
	ToolID           *uuid.UUID                `json:"toolId" db:"tool_id" gorm:"type:uuid;index"`
	AuthorID         *uuid.UUID                `json:"authorId" db:"author_id" gorm:"type:uuid;index"`
	Status           string                    `json:"status" db:"status" gorm:"type:text;not null;default:'draft'"`
	Links            datatypes.JSONSlice[Link] `json:"links" db:"links" gorm:"type:jsonb;default:'[]'"`
	ThumbnailURL     *string                   `json:"thumbnailUrl" db:"thumbnail_url" gorm:"type:text"`
	CreatedAt        time.Time                 `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time                 `json:"updatedAt" db:"updated_at"`

	Category *Category      `json:"-" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
	Tool     *Tool          `json:"-" gorm:"foreignKey:ToolID;references:ID;constraint:OnDelete:SET NULL"`
	Author   *User          `json:"-" gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:SET NULL"`
	Images   []ProjectImage `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}
