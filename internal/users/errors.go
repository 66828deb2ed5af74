package users

import (
	"errors"
	"net/http"
)

// Domain errors for user operations.
var (
	ErrNotFound        = errors.New("user not found")
	ErrDuplicate       = errors.New("username or email already exists")
	ErrInvalidID       = errors.New("invalid user id")
	ErrInvalidUsername = errors.New("username must be 3-32 lowercase letters, digits, '_', '.' or '-'")
	ErrInvalidEmail    = errors.New("invalid email address")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrInvalidUsername),
		errors.Is(err, ErrInvalidEmail):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
