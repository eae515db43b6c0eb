package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/amplitudeventures/vyve/internal/phases"
	"github.com/amplitudeventures/vyve/internal/results"
)

// runSubPhase executes a single sub-phase against the analyst and records
// the outcome. A completed result is skipped unless force is set. Agent
// failures and persistence failures are both scoped to the sub-phase: they
// are tallied as failed and the phase moves on to the next sub-phase.
func runSubPhase(
	ctx context.Context,
	rt *Runtime,
	sp phases.SubPhase,
	prompt string,
	force bool,
	tally *Tally,
) error {
	if !force {
		skip, err := alreadyCompleted(ctx, rt, sp)
		if err != nil {
			return err
		}
		if skip {
			tally.Skipped++
			rt.Logger.InfoContext(ctx, "sub-phase already completed, skipping", "sub_phase", sp.Name)
			return nil
		}
	}

	cmd := results.UpsertCommand{
		SubPhaseID: sp.ID,
		Status:     results.StatusCompleted,
	}

	answer, analyzeErr := rt.Analyst.Analyze(ctx, prompt)
	if analyzeErr != nil {
		cmd.Status = results.StatusFailed
		cmd.Error = analyzeErr.Error()
	} else {
		cmd.Result = answer
	}

	if err := persist(ctx, rt, cmd); err != nil {
		tally.Failed++
		rt.Logger.ErrorContext(
			ctx, "sub-phase result not persisted",
			"sub_phase", sp.Name,
			"error", err,
		)
		return nil
	}

	if analyzeErr != nil {
		tally.Failed++
		rt.Logger.ErrorContext(
			ctx, "sub-phase failed",
			"sub_phase", sp.Name,
			"error", analyzeErr,
		)
		return nil
	}

	tally.Executed++
	rt.Logger.InfoContext(ctx, "sub-phase completed", "sub_phase", sp.Name)
	return nil
}

func alreadyCompleted(ctx context.Context, rt *Runtime, sp phases.SubPhase) (bool, error) {
	current, err := rt.Results.Current(ctx, sp.ID)
	if err != nil {
		if errors.Is(err, results.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check sub-phase %s: %w", sp.Name, err)
	}
	return current.Status == results.StatusCompleted, nil
}

// persist records a sub-phase outcome, retrying once on transient store
// failure before reporting the write as lost.
func persist(ctx context.Context, rt *Runtime, cmd results.UpsertCommand) error {
	if _, err := rt.Results.Upsert(ctx, cmd); err != nil {
		rt.Logger.WarnContext(
			ctx, "result upsert failed, retrying",
			"sub_phase_id", cmd.SubPhaseID,
			"error", err,
		)

		if _, err := rt.Results.Upsert(ctx, cmd); err != nil {
			return fmt.Errorf("%w: sub-phase %s: %w", ErrPersistFailed, cmd.SubPhaseID, err)
		}
	}
	return nil
}
