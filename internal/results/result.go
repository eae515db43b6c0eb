// Package results implements persistence for analysis results. Each
// sub-phase has at most one current result; rerunning a sub-phase
// atomically supersedes the prior record rather than accumulating history.
package results

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisResult is the current outcome of one sub-phase execution.
// Result is populated when Status is completed; Error when failed.
type AnalysisResult struct {
	ID         uuid.UUID `json:"id"`
	SubPhaseID uuid.UUID `json:"sub_phase_id"`
	Status     Status    `json:"status"`
	Result     string    `json:"result,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Duration returns the elapsed time between creation and last update.
func (r *AnalysisResult) Duration() time.Duration {
	return r.UpdatedAt.Sub(r.CreatedAt)
}

// UpsertCommand carries the data needed to record a sub-phase outcome,
// replacing any prior result for the same sub-phase.
type UpsertCommand struct {
	SubPhaseID uuid.UUID
	Status     Status
	Result     string
	Error      string
}

// CompletedResult is a completed result joined with its sub-phase catalog
// identity, used to assemble context for dependent sub-phases.
type CompletedResult struct {
	SubPhaseID   uuid.UUID `json:"sub_phase_id"`
	SubPhaseName string    `json:"sub_phase_name"`
	PhaseOrdinal int       `json:"phase_ordinal"`
	Position     int       `json:"position"`
	Result       string    `json:"result"`
}
