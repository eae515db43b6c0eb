package analysis

import (
	"errors"
	"net/http"

	"github.com/amplitudeventures/vyve/internal/phases"
)

// Domain errors for analysis run operations.
var (
	ErrRunInProgress = errors.New("an analysis run is already in progress")
	ErrRunFailed     = errors.New("analysis run failed")
	ErrNotFound      = errors.New("phase not found")
)

// MapHTTPStatus maps analysis domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrRunInProgress) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, phases.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
