package phases

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for phase catalog operations.
// The catalog is static configuration: only phase status is mutable,
// and only the analysis engine mutates it.
type System interface {
	Handler() *Handler

	All(ctx context.Context) ([]Phase, error)
	Find(ctx context.Context, id uuid.UUID) (*Phase, error)
	SubPhases(ctx context.Context, phaseID uuid.UUID) ([]SubPhase, error)

	// SubPhasesThrough returns the sub-phases of every phase with
	// ordinal <= the given ordinal, ordered by phase ordinal then
	// catalog position.
	SubPhasesThrough(ctx context.Context, ordinal int) ([]SubPhase, error)

	// Dependencies returns the explicit dependency references of a
	// sub-phase. The engine treats these as informational; they feed
	// the dependencies_met status projection only.
	Dependencies(ctx context.Context, subPhaseID uuid.UUID) ([]uuid.UUID, error)

	SetStatus(ctx context.Context, id uuid.UUID, status Status) error

	// ResetStatuses returns every phase to idle.
	ResetStatuses(ctx context.Context) error
}
