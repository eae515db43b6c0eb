// Package phases implements the analysis phase catalog for Vyve.
// It provides types and data access for the ordered phase/sub-phase
// configuration that drives the analysis pipeline.
package phases

import (
	"github.com/google/uuid"
)

// Phase represents an ordered top-level analysis stage.
type Phase struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Ordinal     int       `json:"ordinal"`
	Status      Status    `json:"status"`
}

// SubPhase represents a unit of work within a phase. TakesSummaries marks
// the sub-phase as dependent: its prompt is augmented with the accumulated
// results of previously completed sub-phases before execution.
type SubPhase struct {
	ID             uuid.UUID `json:"id"`
	PhaseID        uuid.UUID `json:"phase_id"`
	Name           string    `json:"name"`
	Prompt         string    `json:"prompt"`
	TakesSummaries bool      `json:"takes_summaries"`
	Position       int       `json:"position"`
}
