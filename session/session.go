// Package session holds server-side session state for the request
// gateway. The store is an explicit dependency so the backing can be
// swapped (in-memory for a single node, Redis when the admin surface
// runs behind more than one) without touching business logic.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is the absolute session lifetime from issuance.
const DefaultTTL = 24 * time.Hour

// Session binds an opaque session id to a user for a bounded lifetime.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its absolute expiry.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Store persists sessions between requests. Get returns (nil, nil)
// for absent or expired sessions; Delete is idempotent.
type Store interface {
	Put(ctx context.Context, s Session) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Issue creates a fresh session for userID and persists it.
func Issue(ctx context.Context, store Store, userID uuid.UUID, ttl time.Duration) (Session, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	s := Session{
		ID:        uuid.New(),
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
	if err := store.Put(ctx, s); err != nil {
		return Session{}, err
	}
	return s, nil
}
