package phases

import (
	"errors"
	"net/http"
)

// Domain errors for phase catalog operations.
var (
	ErrNotFound      = errors.New("phase not found")
	ErrDuplicate     = errors.New("phase ordinal already exists")
	ErrInvalidStatus = errors.New("status must be idle, in_progress, completed, or incomplete")
)

// MapHTTPStatus maps phase domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidStatus) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
