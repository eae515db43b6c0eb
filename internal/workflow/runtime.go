package workflow

import (
	"log/slog"

	"github.com/amplitudeventures/vyve/internal/analyst"
	"github.com/amplitudeventures/vyve/internal/phases"
	"github.com/amplitudeventures/vyve/internal/results"
)

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed by higher-level composition code from Infrastructure and Domain systems.
type Runtime struct {
	Analyst analyst.Analyst
	Phases  phases.System
	Results results.System
	Logger  *slog.Logger
}
