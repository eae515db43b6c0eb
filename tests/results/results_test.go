package results_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/amplitudeventures/vyve/internal/results"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    results.Status
		wantErr bool
	}{
		{"completed", "completed", results.StatusCompleted, false},
		{"failed", "failed", results.StatusFailed, false},
		{"pending is not storable", "pending", "", true},
		{"unknown", "done", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := results.ParseStatus(tt.input)
			if tt.wantErr {
				if !errors.Is(err, results.ErrInvalidStatus) {
					t.Fatalf("error = %v, want ErrInvalidStatus", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("status = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := results.AnalysisResult{
		CreatedAt: created,
		UpdatedAt: created.Add(42 * time.Second),
	}

	if d := r.Duration(); d != 42*time.Second {
		t.Errorf("duration = %v, want 42s", d)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", results.ErrNotFound, http.StatusNotFound},
		{"duplicate", results.ErrDuplicate, http.StatusConflict},
		{"invalid status", results.ErrInvalidStatus, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("current: %w", results.ErrNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := results.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
