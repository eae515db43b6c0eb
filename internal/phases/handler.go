package phases

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/amplitudeventures/vyve/pkg/handlers"
	"github.com/amplitudeventures/vyve/pkg/routes"
)

// Handler provides HTTP endpoints for the phase catalog.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// PhaseView is a phase with its sub-phases attached.
type PhaseView struct {
	Phase
	SubPhases []SubPhase `json:"sub_phases"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "phases"),
	}
}

// Routes returns the route group definition for phase catalog endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/phases",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
		},
	}
}

// List returns the full phase catalog in execution order with sub-phases.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.sys.All(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	views := make([]PhaseView, 0, len(all))
	for _, p := range all {
		subs, err := h.sys.SubPhases(r.Context(), p.ID)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
			return
		}
		views = append(views, PhaseView{Phase: p, SubPhases: subs})
	}

	handlers.RespondJSON(w, http.StatusOK, views)
}

// Find returns a single phase with its sub-phases by UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	p, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	subs, err := h.sys.SubPhases(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, PhaseView{Phase: *p, SubPhases: subs})
}
