// Package analysis implements the analysis run controller for Vyve.
// It drives the phase execution workflow across every catalog phase in
// ordinal order, owns the run-scoped cancellation token, and projects
// execution state for status queries.
package analysis

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for analysis run operations.
// At most one run is active at a time; Start rejects overlap.
type System interface {
	Handler() *Handler

	// Start runs every phase in ordinal order and blocks until the run
	// finishes or is cancelled. Returns ErrRunInProgress when a run is
	// already active.
	Start(ctx context.Context, cmd StartCommand) (*RunSummary, error)

	// Stop requests cooperative cancellation of the active run. It takes
	// effect at the next sub-phase boundary. Idempotent; a no-op success
	// when no run is active.
	Stop(ctx context.Context) error

	// Reset returns every phase to idle and deletes all analysis
	// results. Irreversible. Rejected while a run is active.
	Reset(ctx context.Context) error

	// Status returns the per-sub-phase projection for one phase.
	Status(ctx context.Context, phaseID uuid.UUID) (*PhaseStatus, error)

	// Overview returns the progress projection for every phase.
	Overview(ctx context.Context) ([]PhaseOverview, error)
}
