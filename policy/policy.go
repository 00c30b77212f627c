// Package policy decides what a caller may see or do. It holds the
// visibility rules for project content and the authentication gate for
// mutating operations; the gateway only establishes identity.
package policy

import (
	"github.com/google/uuid"
	"github.com/vortexlabs/portfolio-backend/errs"
	"github.com/vortexlabs/portfolio-backend/models"
)

// Caller is the identity attached to an inbound request. The zero
// value is anonymous.
type Caller struct {
	userID *uuid.UUID
}

func Anonymous() Caller {
	return Caller{}
}

func Authenticated(userID uuid.UUID) Caller {
	return Caller{userID: &userID}
}

func (c Caller) IsAuthenticated() bool {
	return c.userID != nil
}

// UserID returns the caller's user id and whether one is present.
func (c Caller) UserID() (uuid.UUID, bool) {
	if c.userID == nil {
		return uuid.Nil, false
	}
	return *c.userID, true
}

// CanViewProject gates single-project reads. Authenticated callers see
// every status; anonymous callers only published projects.
func CanViewProject(c Caller, project *models.Project) error {
	if project == nil {
		return errs.NewNotFoundError("project not found")
	}
	if c.IsAuthenticated() {
		return nil
	}
	if project.Status == models.StatusPublished {
		return nil
	}
	return errs.NewForbiddenError("project is not public")
}

// RequireAuthenticated gates every mutation and the admin project
// list. It runs before any storage round-trip.
func RequireAuthenticated(c Caller) error {
	if !c.IsAuthenticated() {
		return errs.Unauthorized
	}
	return nil
}
