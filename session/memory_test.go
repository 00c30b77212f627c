package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundtrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s, err := Issue(ctx, store, uuid.New(), time.Hour)
	require.NoError(t, err)

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, s.UserID, got.UserID)
}

func TestMemoryStoreGetAbsent(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s := Session{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		IssuedAt:  time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, store.Put(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "expired sessions read as absent")
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s, err := Issue(ctx, store, uuid.New(), time.Hour)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, s.ID))
	require.NoError(t, store.Delete(ctx, s.ID))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIssueDefaultsTTL(t *testing.T) {
	store := NewMemoryStore()

	s, err := Issue(context.Background(), store, uuid.New(), 0)
	require.NoError(t, err)

	lifetime := s.ExpiresAt.Sub(s.IssuedAt)
	assert.Equal(t, DefaultTTL, lifetime)
}
