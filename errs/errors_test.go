package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDatabaseErrorClassification(t *testing.T) {
	cases := []struct {
		name  string
		cause error
		want  int
	}{
		{"duplicate key", errors.New(`duplicate key value violates unique constraint "idx_projects_slug"`), http.StatusConflict},
		{"sqlstate 23505", errors.New("ERROR: something (SQLSTATE 23505)"), http.StatusConflict},
		{"sqlite unique", errors.New("UNIQUE constraint failed: projects.slug"), http.StatusConflict},
		{"foreign key", errors.New(`insert violates foreign key constraint "fk_tools_category"`), http.StatusBadRequest},
		{"not found", errors.New("record not found"), http.StatusNotFound},
		{"connection", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable},
		{"generic", errors.New("syntax error"), http.StatusInternalServerError},
		{"nil cause", nil, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := NewDatabaseError("create", "project", tc.cause)
			assert.Equal(t, tc.want, apiErr.StatusCode)
		})
	}
}

func TestNewDatabaseErrorDuplicateKeyIsConstraintViolation(t *testing.T) {
	cases := []struct {
		name      string
		cause     error
		wantField string
	}{
		{"postgres", errors.New(`duplicate key value violates unique constraint "idx_projects_slug"`), "idx_projects_slug"},
		{"sqlite", errors.New("UNIQUE constraint failed: projects.slug"), "projects.slug"},
		{"bare sqlstate", errors.New("ERROR (SQLSTATE 23505)"), ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := NewDatabaseError("create", "project", tc.cause)
			assert.True(t, IsUniqueConstraintViolationError(apiErr))
			assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
			assert.Equal(t, tc.wantField, apiErr.Field)
		})
	}
}

func TestApiErrUnwrap(t *testing.T) {
	err := NewValidationError("status", "must be draft, published, or archived")
	assert.True(t, IsBadRequest(err))
	assert.Equal(t, "status", err.Field)

	conflict := NewConstraintViolation("projects", "slug", errors.New("duplicate key"))
	assert.True(t, IsUniqueConstraintViolationError(conflict))
	assert.Equal(t, http.StatusConflict, conflict.StatusCode)
}

func TestSessionErrors(t *testing.T) {
	expired := NewExpiredSessionError()
	assert.Equal(t, http.StatusUnauthorized, expired.StatusCode)
	assert.True(t, IsExpiredSessionError(expired))
	assert.False(t, IsInvalidSessionError(expired))

	invalid := NewInvalidSessionError()
	assert.Equal(t, http.StatusUnauthorized, invalid.StatusCode)
	assert.True(t, IsInvalidSessionError(invalid))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(NewNotFoundError("project not found")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("plain error")))
}

func TestGetFullErrorIncludesCauseChain(t *testing.T) {
	inner := errors.New("driver: bad connection")
	outer := NewDatabaseError("find", "user", inner)

	full := outer.GetFullError()
	assert.Contains(t, full, inner.Error())
	assert.NotEqual(t, full, outer.Error(), "the serialized form omits the cause")
}
