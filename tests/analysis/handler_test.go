package analysis_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/amplitudeventures/vyve/internal/analysis"
	"github.com/amplitudeventures/vyve/internal/phases"
)

type mockSystem struct {
	startFn    func(ctx context.Context, cmd analysis.StartCommand) (*analysis.RunSummary, error)
	stopFn     func(ctx context.Context) error
	resetFn    func(ctx context.Context) error
	statusFn   func(ctx context.Context, phaseID uuid.UUID) (*analysis.PhaseStatus, error)
	overviewFn func(ctx context.Context) ([]analysis.PhaseOverview, error)
}

func (m *mockSystem) Handler() *analysis.Handler { return nil }

func (m *mockSystem) Start(ctx context.Context, cmd analysis.StartCommand) (*analysis.RunSummary, error) {
	return m.startFn(ctx, cmd)
}

func (m *mockSystem) Stop(ctx context.Context) error { return m.stopFn(ctx) }

func (m *mockSystem) Reset(ctx context.Context) error { return m.resetFn(ctx) }

func (m *mockSystem) Status(ctx context.Context, phaseID uuid.UUID) (*analysis.PhaseStatus, error) {
	return m.statusFn(ctx, phaseID)
}

func (m *mockSystem) Overview(ctx context.Context) ([]analysis.PhaseOverview, error) {
	return m.overviewFn(ctx)
}

func setupMux(sys analysis.System) *http.ServeMux {
	h := analysis.NewHandler(sys, discard())
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func TestHandlerStart(t *testing.T) {
	t.Run("empty body starts without force", func(t *testing.T) {
		var captured analysis.StartCommand
		sys := &mockSystem{
			startFn: func(_ context.Context, cmd analysis.StartCommand) (*analysis.RunSummary, error) {
				captured = cmd
				return &analysis.RunSummary{StartedAt: time.Now(), FinishedAt: time.Now()}, nil
			},
		}
		mux := setupMux(sys)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/analysis/start", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if captured.Force {
			t.Error("force should default to false")
		}
	})

	t.Run("json body carries force", func(t *testing.T) {
		var captured analysis.StartCommand
		sys := &mockSystem{
			startFn: func(_ context.Context, cmd analysis.StartCommand) (*analysis.RunSummary, error) {
				captured = cmd
				return &analysis.RunSummary{}, nil
			},
		}
		mux := setupMux(sys)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/analysis/start", bytes.NewReader([]byte(`{"force": true}`)))
		req.Header.Set("Content-Type", "application/json")
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if !captured.Force {
			t.Error("force flag not passed through")
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		sys := &mockSystem{}
		mux := setupMux(sys)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/analysis/start", bytes.NewReader([]byte("not json")))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("overlapping run returns 409", func(t *testing.T) {
		sys := &mockSystem{
			startFn: func(_ context.Context, _ analysis.StartCommand) (*analysis.RunSummary, error) {
				return nil, analysis.ErrRunInProgress
			},
		}
		mux := setupMux(sys)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/analysis/start", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", rec.Code)
		}
	})
}

func TestHandlerStop(t *testing.T) {
	var called bool
	sys := &mockSystem{
		stopFn: func(_ context.Context) error {
			called = true
			return nil
		},
	}
	mux := setupMux(sys)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/analysis/stop", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !called {
		t.Error("stop not invoked")
	}

	var ack analysis.Acknowledgment
	if err := json.NewDecoder(rec.Body).Decode(&ack); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ack.Message == "" {
		t.Error("acknowledgment message empty")
	}
}

func TestHandlerReset(t *testing.T) {
	t.Run("acknowledges reset", func(t *testing.T) {
		sys := &mockSystem{
			resetFn: func(_ context.Context) error { return nil },
		}
		mux := setupMux(sys)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/analysis/reset", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("active run returns 409", func(t *testing.T) {
		sys := &mockSystem{
			resetFn: func(_ context.Context) error { return analysis.ErrRunInProgress },
		}
		mux := setupMux(sys)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/analysis/reset", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", rec.Code)
		}
	})
}

func TestHandlerStatus(t *testing.T) {
	phaseID := uuid.New()

	t.Run("returns projection", func(t *testing.T) {
		sys := &mockSystem{
			statusFn: func(_ context.Context, id uuid.UUID) (*analysis.PhaseStatus, error) {
				return &analysis.PhaseStatus{
					PhaseID:         id,
					Name:            "Document Analysis",
					Status:          phases.StatusCompleted,
					OverallProgress: 100,
				}, nil
			},
		}
		mux := setupMux(sys)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/analysis/status/"+phaseID.String(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var got analysis.PhaseStatus
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.PhaseID != phaseID {
			t.Errorf("phase id = %v, want %v", got.PhaseID, phaseID)
		}
	})

	t.Run("invalid uuid returns 400", func(t *testing.T) {
		sys := &mockSystem{}
		mux := setupMux(sys)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/analysis/status/not-a-uuid", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("unknown phase returns 404", func(t *testing.T) {
		sys := &mockSystem{
			statusFn: func(_ context.Context, _ uuid.UUID) (*analysis.PhaseStatus, error) {
				return nil, phases.ErrNotFound
			},
		}
		mux := setupMux(sys)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/analysis/status/"+uuid.New().String(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestHandlerOverview(t *testing.T) {
	sys := &mockSystem{
		overviewFn: func(_ context.Context) ([]analysis.PhaseOverview, error) {
			return []analysis.PhaseOverview{
				{PhaseID: uuid.New(), Name: "Document Analysis", Status: phases.StatusCompleted, SubPhaseCount: 1},
				{PhaseID: uuid.New(), Name: "Activity Identification", Status: phases.StatusIdle, SubPhaseCount: 1},
			}, nil
		},
	}
	mux := setupMux(sys)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/analysis/phases", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got []analysis.PhaseOverview
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("overviews = %d, want 2", len(got))
	}
}

func TestHandlerRoutes(t *testing.T) {
	h := analysis.NewHandler(&mockSystem{}, discard())
	group := h.Routes()

	if group.Prefix != "/analysis" {
		t.Errorf("prefix = %q, want /analysis", group.Prefix)
	}

	want := []struct {
		method  string
		pattern string
	}{
		{"POST", "/start"},
		{"POST", "/stop"},
		{"POST", "/reset"},
		{"GET", "/status/{id}"},
		{"GET", "/phases"},
	}

	if len(group.Routes) != len(want) {
		t.Fatalf("route count = %d, want %d", len(group.Routes), len(want))
	}

	for i, w := range want {
		r := group.Routes[i]
		if r.Method != w.method || r.Pattern != w.pattern {
			t.Errorf("route[%d] = %s %s, want %s %s", i, r.Method, r.Pattern, w.method, w.pattern)
		}
	}
}
