package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/amplitudeventures/vyve/internal/phases"
)

// ResolveNode returns a state node that loads every sub-phase belonging to
// a phase with ordinal at or below the current phase's and partitions them
// into the independent set (executed first, from source documents only) and
// the dependent set (executed second, with prior results folded into the
// prompt). Resolving across earlier phases lets the skip rule re-attempt
// sub-phases that failed earlier in the run. Both partitions preserve
// catalog order: phase ordinal, then position.
func ResolveNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		phase, err := extractPhase(s)
		if err != nil {
			return s, fmt.Errorf("resolve: %w", err)
		}

		subPhases, err := rt.Phases.SubPhasesThrough(ctx, phase.Ordinal)
		if err != nil {
			return s, fmt.Errorf("resolve: %w: %w", ErrResolveFailed, err)
		}

		if len(subPhases) == 0 {
			return s, fmt.Errorf("resolve: %w: no sub-phases through phase %s", ErrConfiguration, phase.Name)
		}

		independent, dependent, err := partition(subPhases)
		if err != nil {
			return s, fmt.Errorf("resolve: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "phase resolved",
			"phase", phase.Name,
			"independent", len(independent),
			"dependent", len(dependent),
		)

		s = s.Set(KeyIndependent, independent)
		s = s.Set(KeyDependent, dependent)
		s = s.Set(KeyTally, Tally{})
		return s, nil
	})
}

func partition(subPhases []phases.SubPhase) (independent, dependent []phases.SubPhase, err error) {
	for _, sp := range subPhases {
		if strings.TrimSpace(sp.Prompt) == "" {
			return nil, nil, fmt.Errorf("%w: sub-phase %s has an empty prompt", ErrConfiguration, sp.Name)
		}

		if sp.TakesSummaries {
			dependent = append(dependent, sp)
		} else {
			independent = append(independent, sp)
		}
	}
	return independent, dependent, nil
}

func extractPhase(s state.State) (*phases.Phase, error) {
	val, ok := s.Get(KeyPhase)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in state", ErrExecuteFailed, KeyPhase)
	}

	p, ok := val.(phases.Phase)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not phases.Phase", ErrExecuteFailed, KeyPhase)
	}

	return &p, nil
}

func extractTally(s state.State) (*Tally, error) {
	val, ok := s.Get(KeyTally)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in state", ErrExecuteFailed, KeyTally)
	}

	t, ok := val.(Tally)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not Tally", ErrExecuteFailed, KeyTally)
	}

	return &t, nil
}

func extractSubPhases(s state.State, key string) ([]phases.SubPhase, error) {
	val, ok := s.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in state", ErrExecuteFailed, key)
	}

	sps, ok := val.([]phases.SubPhase)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not []phases.SubPhase", ErrExecuteFailed, key)
	}

	return sps, nil
}

func extractToken(s state.State) (*Token, error) {
	val, ok := s.Get(KeyToken)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in state", ErrExecuteFailed, KeyToken)
	}

	t, ok := val.(*Token)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not *Token", ErrExecuteFailed, KeyToken)
	}

	return t, nil
}

func extractForce(s state.State) bool {
	val, ok := s.Get(KeyForce)
	if !ok {
		return false
	}

	force, ok := val.(bool)
	return ok && force
}
