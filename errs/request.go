package errs

import (
	"errors"
	"net/http"
)

var (
	Unauthorized = NewApiErr(http.StatusUnauthorized, "unauthorized")
	Forbidden    = NewApiErr(http.StatusForbidden, "forbidden")
)

// Authentication & session errors
var (
	ErrExpiredSession = errors.New("expired session")
	ErrInvalidSession = errors.New("invalid session")
)

func Malformed(payloadName string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, payloadName+" malformed")
}

func BadRequest(message string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, message)
}

func NewInvalidCredentialsError() *ApiErr {
	return NewApiErr(http.StatusUnauthorized, "invalid credentials")
}

func NewExpiredSessionError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrExpiredSession,
		Details:    "Session has expired",
		Field:      "session",
	}
}

func NewInvalidSessionError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidSession,
		Details:    "Session credential is invalid",
		Field:      "session",
	}
}

func IsExpiredSessionError(err error) bool {
	return errors.Is(err, ErrExpiredSession)
}

func IsInvalidSessionError(err error) bool {
	return errors.Is(err, ErrInvalidSession)
}
