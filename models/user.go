package models

import (
	"time"

	"github.com/google/uuid"
)

const DefaultUserRole = "Developer"

// User is an authenticated operator of the admin surface.
// The password column holds a bcrypt hash and is never serialized.
type User struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null;unique"`
	Password  string    `json:"-" db:"password" gorm:"type:text;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Role      string    `json:"role" db:"role" gorm:"type:text;not null;default:'Developer'"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// PublicUser is the outward-facing shape of a User. There is no password
// field at all, so a stale struct copy can never leak the hash.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public redacts the user for responses.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
