package workflow

import (
	"context"
	"fmt"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/amplitudeventures/vyve/internal/phases"
)

// Execute runs a single analysis phase. It builds the state graph
// (resolve → independent → dependent → finalize), seeds the initial state
// with the phase, the cancellation token, and the force flag, executes it,
// and extracts the PhaseOutcome from the final state.
func Execute(
	ctx context.Context,
	rt *Runtime,
	phase phases.Phase,
	token *Token,
	force bool,
) (*PhaseOutcome, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyPhase, phase)
	initialState = initialState.Set(KeyToken, token)
	initialState = initialState.Set(KeyForce, force)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractOutcome(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("vyve-phase")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("resolve", ResolveNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("independent", IndependentNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("dependent", DependentNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("finalize", FinalizeNode(rt)); err != nil {
		return nil, err
	}

	// resolve → independent → dependent → finalize (unconditional)
	if err := graph.AddEdge("resolve", "independent", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("independent", "dependent", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("dependent", "finalize", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("resolve"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("finalize"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractOutcome(s state.State) (*PhaseOutcome, error) {
	val, ok := s.Get(KeyOutcome)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyOutcome)
	}

	outcome, ok := val.(PhaseOutcome)
	if !ok {
		return nil, fmt.Errorf("%s is not PhaseOutcome", KeyOutcome)
	}

	return &outcome, nil
}
