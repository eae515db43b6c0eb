package results

import (
	"errors"
	"net/http"
)

// Domain errors for result operations.
var (
	ErrNotFound      = errors.New("analysis result not found")
	ErrDuplicate     = errors.New("analysis result already exists")
	ErrInvalidStatus = errors.New("status must be completed or failed")
)

// MapHTTPStatus maps result domain errors to appropriate HTTP status codes.
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
