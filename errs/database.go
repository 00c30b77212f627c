package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrAlreadyExists             = errors.New("already exists")
	ErrDatabaseQuery             = errors.New("database query failed")
	ErrDatabaseConnection        = errors.New("database connection failed")
	ErrUniqueConstraintViolation = errors.New("unique constraint violation")
	ErrForeignKeyConstraint      = errors.New("foreign key constraint violation")
)

func NewAlreadyExists(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
	}
}

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

func NewConstraintViolation(entity, field string, cause error) *ApiErr {
	details := fmt.Sprintf("%s violates a unique constraint", entity)
	if field != "" {
		details = fmt.Sprintf("Unique constraint violation on %s.%s", entity, field)
	}
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrUniqueConstraintViolation,
		Details:    details,
		Cause:      cause,
		Field:      field,
	}
}

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	// Check for common database errors and provide more specific messages
	if cause != nil {
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "duplicate key"),
			strings.Contains(errStr, "SQLSTATE 23505"),
			strings.Contains(errStr, "UNIQUE constraint"):
			return NewConstraintViolation(entity, uniqueField(errStr), cause)
		case strings.Contains(errStr, "foreign key constraint"):
			return &ApiErr{
				StatusCode: http.StatusBadRequest,
				err:        fmt.Errorf("invalid reference in %s", entity),
				Details:    "The referenced resource does not exist or cannot be linked",
				Cause:      cause,
			}
		case strings.Contains(errStr, "not found"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s not found", entity),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrDatabaseConnection,
				Details:    "Unable to connect to database",
				Cause:      cause,
			}
		}
	}

	// Generic database error
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

// uniqueField pulls the colliding column or constraint name out of a
// driver error message. Postgres quotes the constraint name; SQLite
// names the column after "UNIQUE constraint failed:". Returns "" when
// the message carries neither.
func uniqueField(errStr string) string {
	const sqlitePrefix = "UNIQUE constraint failed: "
	if i := strings.Index(errStr, sqlitePrefix); i >= 0 {
		field := errStr[i+len(sqlitePrefix):]
		if j := strings.IndexAny(field, ", ("); j >= 0 {
			field = field[:j]
		}
		return field
	}
	const pgPrefix = `unique constraint "`
	if i := strings.Index(errStr, pgPrefix); i >= 0 {
		field := errStr[i+len(pgPrefix):]
		if j := strings.IndexByte(field, '"'); j >= 0 {
			return field[:j]
		}
	}
	return ""
}

func IsUniqueConstraintViolationError(err error) bool {
	return errors.Is(err, ErrUniqueConstraintViolation)
}

func IsForeignKeyConstraintError(err error) bool {
	return errors.Is(err, ErrForeignKeyConstraint)
}
