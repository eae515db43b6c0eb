package phases_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/amplitudeventures/vyve/internal/phases"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    phases.Status
		wantErr bool
	}{
		{"idle", "idle", phases.StatusIdle, false},
		{"in_progress", "in_progress", phases.StatusInProgress, false},
		{"completed", "completed", phases.StatusCompleted, false},
		{"incomplete", "incomplete", phases.StatusIncomplete, false},
		{"unknown", "running", "", true},
		{"empty", "", "", true},
		{"case sensitive", "Idle", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := phases.ParseStatus(tt.input)
			if tt.wantErr {
				if !errors.Is(err, phases.ErrInvalidStatus) {
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

func TestStatusUnmarshalJSON(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		var s phases.Status
		if err := json.Unmarshal([]byte(`"completed"`), &s); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if s != phases.StatusCompleted {
			t.Errorf("status = %q, want completed", s)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		var s phases.Status
		err := json.Unmarshal([]byte(`"paused"`), &s)
		if !errors.Is(err, phases.ErrInvalidStatus) {
			t.Errorf("error = %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("non-string", func(t *testing.T) {
		var s phases.Status
		if err := json.Unmarshal([]byte(`42`), &s); err == nil {
			t.Error("expected error for non-string input")
		}
	})
}

func TestStatuses(t *testing.T) {
	got := phases.Statuses()
	want := []phases.Status{
		phases.StatusIdle,
		phases.StatusInProgress,
		phases.StatusCompleted,
		phases.StatusIncomplete,
	}

	if len(got) != len(want) {
		t.Fatalf("statuses = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("statuses[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", phases.ErrNotFound, http.StatusNotFound},
		{"duplicate", phases.ErrDuplicate, http.StatusConflict},
		{"invalid status", phases.ErrInvalidStatus, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("find: %w", phases.ErrNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := phases.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
