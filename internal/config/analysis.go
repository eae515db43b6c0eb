package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvAnalysisMaxAttempts  = "VYVE_ANALYSIS_MAX_ATTEMPTS"
	EnvAnalysisRetryBackoff = "VYVE_ANALYSIS_RETRY_BACKOFF"
	EnvAnalysisTopK         = "VYVE_ANALYSIS_TOP_K"
)

// AnalysisConfig holds analysis engine tuning: the agent retry budget and
// the passage count requested per retrieval call.
type AnalysisConfig struct {
	MaxAttempts  int    `toml:"max_attempts"`
	RetryBackoff string `toml:"retry_backoff"`
	TopK         int    `toml:"top_k"`
}

// RetryBackoffDuration returns RetryBackoff as a time.Duration.
func (c *AnalysisConfig) RetryBackoffDuration() time.Duration {
	d, _ := time.ParseDuration(c.RetryBackoff)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AnalysisConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AnalysisConfig) Merge(overlay *AnalysisConfig) {
	if overlay.MaxAttempts != 0 {
		c.MaxAttempts = overlay.MaxAttempts
	}
	if overlay.RetryBackoff != "" {
		c.RetryBackoff = overlay.RetryBackoff
	}
	if overlay.TopK != 0 {
		c.TopK = overlay.TopK
	}
}

func (c *AnalysisConfig) loadDefaults() {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 3
	}
	if c.RetryBackoff == "" {
		c.RetryBackoff = "2s"
	}
	if c.TopK == 0 {
		c.TopK = 5
	}
}

func (c *AnalysisConfig) loadEnv() {
	if v := os.Getenv(EnvAnalysisMaxAttempts); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxAttempts = n
		}
	}
	if v := os.Getenv(EnvAnalysisRetryBackoff); v != "" {
		c.RetryBackoff = v
	}
	if v := os.Getenv(EnvAnalysisTopK); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TopK = n
		}
	}
}

func (c *AnalysisConfig) validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1: %d", c.MaxAttempts)
	}
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be at least 1: %d", c.TopK)
	}
	if _, err := time.ParseDuration(c.RetryBackoff); err != nil {
		return fmt.Errorf("invalid retry_backoff: %w", err)
	}
	return nil
}
