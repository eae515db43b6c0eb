package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// DependentNode returns a state node that executes the resolved dependent
// sub-phases in catalog order, after every independent sub-phase has run.
// The completed-result set is re-read before each sub-phase so that later
// dependent sub-phases see the outputs of earlier ones. The cancellation
// token is checked before each sub-phase starts.
func DependentNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		phase, err := extractPhase(s)
		if err != nil {
			return s, fmt.Errorf("dependent: %w", err)
		}

		subPhases, err := extractSubPhases(s, KeyDependent)
		if err != nil {
			return s, fmt.Errorf("dependent: %w", err)
		}

		tally, err := extractTally(s)
		if err != nil {
			return s, fmt.Errorf("dependent: %w", err)
		}

		token, err := extractToken(s)
		if err != nil {
			return s, fmt.Errorf("dependent: %w", err)
		}

		force := extractForce(s)

		for _, sp := range subPhases {
			if tally.Cancelled {
				break
			}

			if token.Cancelled() {
				tally.Cancelled = true
				rt.Logger.InfoContext(ctx, "cancellation requested, halting phase", "sub_phase", sp.Name)
				break
			}

			completed, err := rt.Results.CompletedThrough(ctx, phase.Ordinal)
			if err != nil {
				return s, fmt.Errorf("dependent: load completed results: %w", err)
			}

			prompt := BuildContext(sp.Prompt, completed)

			if err := runSubPhase(ctx, rt, sp, prompt, force, tally); err != nil {
				return s, fmt.Errorf("dependent: %w", err)
			}
		}

		s = s.Set(KeyTally, *tally)
		return s, nil
	})
}
