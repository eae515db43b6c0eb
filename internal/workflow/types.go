package workflow

import (
	"time"

	"github.com/google/uuid"

	"github.com/amplitudeventures/vyve/internal/phases"
)

const (
	KeyPhase       = "phase"
	KeyForce       = "force"
	KeyToken       = "cancel_token"
	KeyIndependent = "independent_sub_phases"
	KeyDependent   = "dependent_sub_phases"
	KeyTally       = "tally"
)

// Tally accumulates per-sub-phase outcomes as the graph executes.
// Cancelled flips when the token fires at a sub-phase boundary; all
// remaining sub-phases in the phase are then left untouched.
type Tally struct {
	Executed  int  `json:"executed"`
	Skipped   int  `json:"skipped"`
	Failed    int  `json:"failed"`
	Cancelled bool `json:"cancelled"`
}

// PhaseOutcome is the final output from one phase execution.
type PhaseOutcome struct {
	PhaseID     uuid.UUID     `json:"phase_id"`
	PhaseName   string        `json:"phase_name"`
	Status      phases.Status `json:"status"`
	Executed    int           `json:"executed"`
	Skipped     int           `json:"skipped"`
	Failed      int           `json:"failed"`
	Cancelled   bool          `json:"cancelled"`
	CompletedAt time.Time     `json:"completed_at"`
}
