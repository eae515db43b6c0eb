package config

import (
	"fmt"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const (
	EnvAgentProviderName = "VYVE_AGENT_PROVIDER_NAME"
	EnvAgentBaseURL      = "VYVE_AGENT_BASE_URL"
	EnvAgentToken        = "VYVE_AGENT_TOKEN"
	EnvAgentDeployment   = "VYVE_AGENT_DEPLOYMENT"
	EnvAgentAPIVersion   = "VYVE_AGENT_API_VERSION"
	EnvAgentAuthType     = "VYVE_AGENT_AUTH_TYPE"
	EnvAgentModelName    = "VYVE_AGENT_MODEL_NAME"
)

// AgentSettings is the TOML shape of the [agent] section. The go-agents
// AgentConfig carries json tags only, so the section decodes into this
// struct and converts during finalize.
type AgentSettings struct {
	Name     string           `toml:"name"`
	Provider ProviderSettings `toml:"provider"`
	Model    ModelSettings    `toml:"model"`
}

type ProviderSettings struct {
	Name    string         `toml:"name"`
	BaseURL string         `toml:"base_url"`
	Options map[string]any `toml:"options"`
}

type ModelSettings struct {
	Name string `toml:"name"`
}

// Merge overwrites non-zero fields from overlay.
func (s *AgentSettings) Merge(overlay *AgentSettings) {
	if overlay.Name != "" {
		s.Name = overlay.Name
	}
	if overlay.Provider.Name != "" {
		s.Provider.Name = overlay.Provider.Name
	}
	if overlay.Provider.BaseURL != "" {
		s.Provider.BaseURL = overlay.Provider.BaseURL
	}
	for k, v := range overlay.Provider.Options {
		if s.Provider.Options == nil {
			s.Provider.Options = make(map[string]any)
		}
		s.Provider.Options[k] = v
	}
	if overlay.Model.Name != "" {
		s.Model.Name = overlay.Model.Name
	}
}

// Build converts the TOML settings into a go-agents AgentConfig.
// Empty sections stay nil so FinalizeAgent can fill defaults.
func (s *AgentSettings) Build() gaconfig.AgentConfig {
	cfg := gaconfig.AgentConfig{Name: s.Name}
	if s.Provider.Name != "" || s.Provider.BaseURL != "" || len(s.Provider.Options) > 0 {
		cfg.Provider = &gaconfig.ProviderConfig{
			Name:    s.Provider.Name,
			BaseURL: s.Provider.BaseURL,
			Options: s.Provider.Options,
		}
	}
	if s.Model.Name != "" {
		cfg.Model = &gaconfig.ModelConfig{Name: s.Model.Name}
	}
	return cfg
}

// FinalizeAgent applies Vyve's three-phase finalize pattern to a go-agents AgentConfig:
// defaults from go-agents DefaultAgentConfig, environment variable overrides, and validation.
func FinalizeAgent(c *gaconfig.AgentConfig) error {
	loadAgentDefaults(c)
	loadAgentEnv(c)
	return validateAgent(c)
}

func loadAgentDefaults(c *gaconfig.AgentConfig) {
	defaults := gaconfig.DefaultAgentConfig()
	defaults.Merge(c)
	*c = defaults
}

func loadAgentEnv(c *gaconfig.AgentConfig) {
	if c.Provider == nil {
		c.Provider = &gaconfig.ProviderConfig{}
	}
	if c.Provider.Options == nil {
		c.Provider.Options = make(map[string]any)
	}
	if c.Model == nil {
		c.Model = &gaconfig.ModelConfig{}
	}
	if v := os.Getenv(EnvAgentProviderName); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModelName); v != "" {
		c.Model.Name = v
	}

	setOption := func(envVar, key string) {
		if v := os.Getenv(envVar); v != "" {
			c.Provider.Options[key] = v
		}
	}

	setOption(EnvAgentToken, "token")
	setOption(EnvAgentDeployment, "deployment")
	setOption(EnvAgentAPIVersion, "api_version")
	setOption(EnvAgentAuthType, "auth_type")
}

func validateAgent(c *gaconfig.AgentConfig) error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Provider == nil {
		return fmt.Errorf("provider required")
	}
	if c.Provider.Name == "" {
		return fmt.Errorf("provider name required")
	}
	if c.Model == nil {
		return fmt.Errorf("model required")
	}
	return nil
}
