package companies

import (
	"errors"
	"net/http"
)

// Domain errors for company operations.
var (
	ErrNotFound  = errors.New("company not found")
	ErrDuplicate = errors.New("company already exists")
	ErrInvalid   = errors.New("invalid company")
)

// MapHTTPStatus maps company domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
