package models

// ProjectView is the denormalized read shape returned to callers: the
// project row plus whichever of its references resolve. It is never
// persisted. The author, when present, is already redacted.
type ProjectView struct {
	Project
	Category *Category      `json:"category,omitempty"`
	Tool     *Tool          `json:"tool,omitempty"`
	Author   *PublicUser    `json:"author,omitempty"`
	Images   []ProjectImage `json:"images"`
}
