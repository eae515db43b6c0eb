package results

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for result persistence. The analysis
// engine is the only writer; status projections are the only readers.
type System interface {
	// Current returns the single live result for a sub-phase, or
	// ErrNotFound when the sub-phase has never produced one (pending).
	Current(ctx context.Context, subPhaseID uuid.UUID) (*AnalysisResult, error)

	// Upsert records a sub-phase outcome, atomically superseding any
	// prior result for the same sub-phase.
	Upsert(ctx context.Context, cmd UpsertCommand) (*AnalysisResult, error)

	// CompletedThrough returns every completed result belonging to a
	// phase with ordinal <= the given ordinal, ordered by phase ordinal
	// then catalog position.
	CompletedThrough(ctx context.Context, ordinal int) ([]CompletedResult, error)

	// CompletedCount returns the number of completed results within a
	// single phase.
	CompletedCount(ctx context.Context, phaseID uuid.UUID) (int, error)

	// DeleteAll removes every analysis result. Irreversible.
	DeleteAll(ctx context.Context) error
}
