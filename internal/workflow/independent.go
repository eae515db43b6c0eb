package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// IndependentNode returns a state node that executes the resolved
// independent sub-phases in catalog order. Each sub-phase runs against
// source documents only; prior results are never injected. The
// cancellation token is checked before each sub-phase starts.
func IndependentNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		subPhases, err := extractSubPhases(s, KeyIndependent)
		if err != nil {
			return s, fmt.Errorf("independent: %w", err)
		}

		tally, err := extractTally(s)
		if err != nil {
			return s, fmt.Errorf("independent: %w", err)
		}

		token, err := extractToken(s)
		if err != nil {
			return s, fmt.Errorf("independent: %w", err)
		}

		force := extractForce(s)

		for _, sp := range subPhases {
			if token.Cancelled() {
				tally.Cancelled = true
				rt.Logger.InfoContext(ctx, "cancellation requested, halting phase", "sub_phase", sp.Name)
				break
			}

			if err := runSubPhase(ctx, rt, sp, sp.Prompt, force, tally); err != nil {
				return s, fmt.Errorf("independent: %w", err)
			}
		}

		s = s.Set(KeyTally, *tally)
		return s, nil
	})
}
