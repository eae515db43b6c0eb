package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amplitudeventures/vyve/internal/analyst"
	"github.com/amplitudeventures/vyve/internal/phases"
	"github.com/amplitudeventures/vyve/internal/results"
	"github.com/amplitudeventures/vyve/internal/workflow"
)

type controller struct {
	rt      *workflow.Runtime
	phases  phases.System
	results results.System
	logger  *slog.Logger

	mu    sync.Mutex
	token *workflow.Token
}

// New creates an analysis controller implementing the System interface.
// It internally constructs the workflow runtime from the provided dependencies.
func New(
	an analyst.Analyst,
	phaseSys phases.System,
	resultSys results.System,
	logger *slog.Logger,
) System {
	rt := &workflow.Runtime{
		Analyst: an,
		Phases:  phaseSys,
		Results: resultSys,
		Logger:  logger.With("workflow", "analysis"),
	}
	return &controller{
		rt:      rt,
		phases:  phaseSys,
		results: resultSys,
		logger:  logger.With("system", "analysis"),
	}
}

func (c *controller) Handler() *Handler {
	return NewHandler(c, c.logger)
}

// acquire claims the single run slot and issues its cancellation token.
func (c *controller) acquire() (*workflow.Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != nil {
		return nil, ErrRunInProgress
	}

	c.token = workflow.NewToken()
	return c.token, nil
}

func (c *controller) release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = nil
}

func (c *controller) Start(ctx context.Context, cmd StartCommand) (*RunSummary, error) {
	token, err := c.acquire()
	if err != nil {
		return nil, err
	}
	defer c.release()

	catalog, err := c.phases.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load phase catalog: %w", ErrRunFailed, err)
	}

	summary := &RunSummary{StartedAt: time.Now()}

	c.logger.InfoContext(ctx, "analysis run started", "phases", len(catalog), "force", cmd.Force)

	// Every phase gets its in_progress attempt, even after cancellation:
	// a cancelled run finalizes each remaining phase as incomplete at its
	// first sub-phase boundary rather than skipping it.
	for _, p := range catalog {
		if err := c.phases.SetStatus(ctx, p.ID, phases.StatusInProgress); err != nil {
			return nil, fmt.Errorf("%w: mark phase %s in progress: %w", ErrRunFailed, p.Name, err)
		}

		outcome, err := workflow.Execute(ctx, c.rt, p, token, cmd.Force)
		if err != nil {
			if serr := c.phases.SetStatus(ctx, p.ID, phases.StatusIncomplete); serr != nil {
				c.logger.ErrorContext(ctx, "failed to mark phase incomplete", "phase", p.Name, "error", serr)
			}
			return nil, fmt.Errorf("%w: phase %s: %w", ErrRunFailed, p.Name, err)
		}

		if err := c.phases.SetStatus(ctx, p.ID, outcome.Status); err != nil {
			return nil, fmt.Errorf("%w: finalize phase %s: %w", ErrRunFailed, p.Name, err)
		}

		summary.Phases = append(summary.Phases, *outcome)
	}

	summary.FinishedAt = time.Now()
	summary.Cancelled = token.Cancelled()

	c.logger.InfoContext(
		ctx, "analysis run finished",
		"phases", len(summary.Phases),
		"cancelled", summary.Cancelled,
		"duration", summary.FinishedAt.Sub(summary.StartedAt),
	)

	return summary, nil
}

func (c *controller) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == nil {
		c.logger.InfoContext(ctx, "stop requested with no active run")
		return nil
	}

	c.token.Cancel()
	c.logger.InfoContext(ctx, "cancellation requested")
	return nil
}

func (c *controller) Reset(ctx context.Context) error {
	c.mu.Lock()
	active := c.token != nil
	c.mu.Unlock()

	if active {
		return ErrRunInProgress
	}

	if err := c.results.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete analysis results: %w", err)
	}

	if err := c.phases.ResetStatuses(ctx); err != nil {
		return fmt.Errorf("reset phase statuses: %w", err)
	}

	c.logger.InfoContext(ctx, "analysis state reset")
	return nil
}

func (c *controller) Status(ctx context.Context, phaseID uuid.UUID) (*PhaseStatus, error) {
	phase, err := c.phases.Find(ctx, phaseID)
	if err != nil {
		return nil, err
	}

	subPhases, err := c.phases.SubPhases(ctx, phaseID)
	if err != nil {
		return nil, fmt.Errorf("load sub-phases: %w", err)
	}

	status := &PhaseStatus{
		PhaseID: phase.ID,
		Name:    phase.Name,
		Ordinal: phase.Ordinal,
		Status:  phase.Status,
	}

	completed := 0
	for _, sp := range subPhases {
		sps, err := c.subPhaseStatus(ctx, sp)
		if err != nil {
			return nil, err
		}

		if sps.Status == results.StatusCompleted {
			completed++
		}

		status.SubPhases = append(status.SubPhases, *sps)
	}

	status.OverallProgress = progress(completed, len(subPhases))
	return status, nil
}

func (c *controller) subPhaseStatus(ctx context.Context, sp phases.SubPhase) (*SubPhaseStatus, error) {
	status := &SubPhaseStatus{
		SubPhaseID:     sp.ID,
		Name:           sp.Name,
		Position:       sp.Position,
		TakesSummaries: sp.TakesSummaries,
		Status:         results.StatusPending,
	}

	met, err := c.dependenciesMet(ctx, sp.ID)
	if err != nil {
		return nil, err
	}
	status.DependenciesMet = met

	current, err := c.results.Current(ctx, sp.ID)
	if err != nil {
		if errors.Is(err, results.ErrNotFound) {
			return status, nil
		}
		return nil, fmt.Errorf("load result for sub-phase %s: %w", sp.Name, err)
	}

	duration := current.Duration().Seconds()

	status.Status = current.Status
	status.Result = current.Result
	status.Error = current.Error
	status.StartedAt = &current.CreatedAt
	status.UpdatedAt = &current.UpdatedAt
	status.DurationSeconds = &duration

	return status, nil
}

// dependenciesMet reports whether every explicitly referenced sub-phase
// holds a completed result. Explicit dependencies are informational; the
// takes_summaries flag alone decides execution order.
func (c *controller) dependenciesMet(ctx context.Context, subPhaseID uuid.UUID) (bool, error) {
	deps, err := c.phases.Dependencies(ctx, subPhaseID)
	if err != nil {
		return false, fmt.Errorf("load dependencies: %w", err)
	}

	for _, dep := range deps {
		current, err := c.results.Current(ctx, dep)
		if err != nil {
			if errors.Is(err, results.ErrNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("load dependency result: %w", err)
		}
		if current.Status != results.StatusCompleted {
			return false, nil
		}
	}

	return true, nil
}

func (c *controller) Overview(ctx context.Context) ([]PhaseOverview, error) {
	catalog, err := c.phases.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load phase catalog: %w", err)
	}

	overviews := make([]PhaseOverview, 0, len(catalog))
	for _, p := range catalog {
		subPhases, err := c.phases.SubPhases(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("load sub-phases for %s: %w", p.Name, err)
		}

		completed, err := c.results.CompletedCount(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("count results for %s: %w", p.Name, err)
		}

		overviews = append(overviews, PhaseOverview{
			PhaseID:         p.ID,
			Name:            p.Name,
			Description:     p.Description,
			Ordinal:         p.Ordinal,
			Status:          p.Status,
			SubPhaseCount:   len(subPhases),
			CompletedCount:  completed,
			OverallProgress: progress(completed, len(subPhases)),
		})
	}

	return overviews, nil
}
