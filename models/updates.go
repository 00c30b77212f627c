package models

import (
	"github.com/google/uuid"
)

// Partial-update payloads. Merge semantics: a nil pointer (or unset
// Optional) leaves the column unchanged; Optional fields sent as null
// clear the column.

type CategoryUpdate struct {
	Name        *string          `json:"name"`
	Slug        *string          `json:"slug"`
	Color       *string          `json:"color"`
	Description Optional[string] `json:"description"`
}

type ToolUpdate struct {
	Name        *string             `json:"name"`
	Slug        *string             `json:"slug"`
	CategoryID  Optional[uuid.UUID] `json:"categoryId"`
	Description Optional[string]    `json:"description"`
}

type ProjectUpdate struct {
	Title            *string             `json:"title"`
	ShortDescription *string             `json:"shortDescription"`
	Content          *string             `json:"content"`
	Status           *string             `json:"status"`
	Links            *[]Link             `json:"links"`
	CategoryID       Optional[uuid.UUID] `json:"categoryId"`
	ToolID           Optional[uuid.UUID] `json:"toolId"`
	ThumbnailURL     Optional[string]    `json:"thumbnailUrl"`
}
