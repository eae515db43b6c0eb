package api

import (
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/amplitudeventures/vyve/internal/config"
	"github.com/amplitudeventures/vyve/internal/infrastructure"
	"github.com/amplitudeventures/vyve/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Agent      gaconfig.AgentConfig
	Analysis   config.AnalysisConfig
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Agent:      cfg.Agent,
		Analysis:   cfg.Analysis,
		Pagination: cfg.API.Pagination,
	}
}
