package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/amplitudeventures/vyve/internal/phases"
)

const KeyOutcome = "phase_outcome"

// FinalizeNode returns a state node that folds the run tally into the
// phase's terminal status. A cancelled run leaves the phase incomplete;
// otherwise the phase completes, even when individual sub-phases failed;
// failures are recorded per sub-phase and surface through status, not by
// aborting the phase.
func FinalizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		phase, err := extractPhase(s)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		tally, err := extractTally(s)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		status := phases.StatusCompleted
		if tally.Cancelled {
			status = phases.StatusIncomplete
		}

		outcome := PhaseOutcome{
			PhaseID:     phase.ID,
			PhaseName:   phase.Name,
			Status:      status,
			Executed:    tally.Executed,
			Skipped:     tally.Skipped,
			Failed:      tally.Failed,
			Cancelled:   tally.Cancelled,
			CompletedAt: time.Now(),
		}

		rt.Logger.InfoContext(
			ctx, "phase finalized",
			"phase", phase.Name,
			"status", status,
			"executed", tally.Executed,
			"skipped", tally.Skipped,
			"failed", tally.Failed,
		)

		s = s.Set(KeyOutcome, outcome)
		return s, nil
	})
}
