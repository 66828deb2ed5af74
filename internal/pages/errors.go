package pages

import (
	"errors"
	"net/http"
)

// Domain errors for page operations.
var (
	ErrNotFound      = errors.New("page not found")
	ErrDuplicate     = errors.New("page slug already exists")
	ErrInvalidSlug   = errors.New("slug must be lowercase words separated by hyphens")
	ErrTitleRequired = errors.New("title is required")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidSlug), errors.Is(err, ErrTitleRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
