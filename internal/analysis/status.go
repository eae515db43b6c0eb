package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/amplitudeventures/vyve/internal/phases"
	"github.com/amplitudeventures/vyve/internal/results"
	"github.com/amplitudeventures/vyve/internal/workflow"
)

// StartCommand carries the options for starting an analysis run.
// Force reruns sub-phases that already hold a completed result.
type StartCommand struct {
	Force bool `json:"force"`
}

// RunSummary is the acknowledgment returned by a completed analysis run.
type RunSummary struct {
	StartedAt  time.Time               `json:"started_at"`
	FinishedAt time.Time               `json:"finished_at"`
	Cancelled  bool                    `json:"cancelled"`
	Phases     []workflow.PhaseOutcome `json:"phases"`
}

// SubPhaseStatus is the read-only projection of one sub-phase's execution
// state. Status is pending when no result record exists. DependenciesMet
// reports whether every explicitly referenced sub-phase holds a completed
// result; it is informational and never gates execution.
type SubPhaseStatus struct {
	SubPhaseID      uuid.UUID      `json:"sub_phase_id"`
	Name            string         `json:"name"`
	Position        int            `json:"position"`
	TakesSummaries  bool           `json:"takes_summaries"`
	DependenciesMet bool           `json:"dependencies_met"`
	Status          results.Status `json:"status"`
	Result          string         `json:"result,omitempty"`
	Error           string         `json:"error,omitempty"`
	StartedAt       *time.Time     `json:"started_at,omitempty"`
	UpdatedAt       *time.Time     `json:"updated_at,omitempty"`
	DurationSeconds *float64       `json:"duration_seconds,omitempty"`
}

// PhaseStatus aggregates the projection for one phase.
// OverallProgress is completed sub-phases over total, as a percentage.
type PhaseStatus struct {
	PhaseID         uuid.UUID        `json:"phase_id"`
	Name            string           `json:"name"`
	Ordinal         int              `json:"ordinal"`
	Status          phases.Status    `json:"status"`
	OverallProgress float64          `json:"overall_progress"`
	SubPhases       []SubPhaseStatus `json:"sub_phases"`
}

// PhaseOverview is the list-level projection: phase identity plus
// progress, without per-sub-phase detail.
type PhaseOverview struct {
	PhaseID         uuid.UUID     `json:"phase_id"`
	Name            string        `json:"name"`
	Description     *string       `json:"description"`
	Ordinal         int           `json:"ordinal"`
	Status          phases.Status `json:"status"`
	SubPhaseCount   int           `json:"sub_phase_count"`
	CompletedCount  int           `json:"completed_count"`
	OverallProgress float64       `json:"overall_progress"`
}

func progress(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
