package analysis

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/amplitudeventures/vyve/pkg/handlers"
	"github.com/amplitudeventures/vyve/pkg/routes"
)

// Handler provides HTTP endpoints for analysis run operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// Acknowledgment is the response body for stop and reset requests.
type Acknowledgment struct {
	Message string `json:"message"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "analysis"),
	}
}

// Routes returns the route group definition for analysis endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/analysis",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/start", Handler: h.Start},
			{Method: "POST", Pattern: "/stop", Handler: h.Stop},
			{Method: "POST", Pattern: "/reset", Handler: h.Reset},
			{Method: "GET", Pattern: "/status/{id}", Handler: h.Status},
			{Method: "GET", Pattern: "/phases", Handler: h.Overview},
		},
	}
}

// Start begins an analysis run over every phase and blocks until it
// finishes, returning the run summary. An optional JSON body carries the
// force flag for rerunning completed sub-phases.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	var cmd StartCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil && !errors.Is(err, io.EOF) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	summary, err := h.sys.Start(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}

// Stop requests cooperative cancellation of the active run.
func (h *Handler) Stop(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Stop(r.Context()); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Acknowledgment{Message: "analysis stop requested"})
}

// Reset returns every phase to idle and deletes all analysis results.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Reset(r.Context()); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Acknowledgment{Message: "analysis state reset"})
}

// Status returns the per-sub-phase projection for a phase UUID path parameter.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	status, err := h.sys.Status(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, status)
}

// Overview returns the progress projection for every phase.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	overviews, err := h.sys.Overview(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, overviews)
}
