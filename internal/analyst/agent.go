package analyst

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/amplitudeventures/vyve/internal/retrieval"
)

// Options tune the analyst's retrieval fan-out and retry budget.
type Options struct {
	// TopK bounds the passages requested per retrieval call.
	TopK int
	// MaxAttempts caps model call attempts per Analyze invocation.
	MaxAttempts int
	// Backoff is the base delay between attempts, doubled each retry.
	Backoff time.Duration
}

func (o *Options) normalize() {
	if o.TopK <= 0 {
		o.TopK = retrieval.DefaultTopK
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	if o.Backoff <= 0 {
		o.Backoff = 2 * time.Second
	}
}

type agentAnalyst struct {
	cfg       gaconfig.AgentConfig
	retrieval retrieval.System
	opts      Options
	logger    *slog.Logger
}

// New creates an Analyst backed by a go-agents chat model and the given
// retrieval store. A nil retrieval system is permitted: the analyst then
// runs in degraded zero-retrieval mode on every call.
func New(
	cfg gaconfig.AgentConfig,
	store retrieval.System,
	opts Options,
	logger *slog.Logger,
) Analyst {
	opts.normalize()
	return &agentAnalyst{
		cfg:       cfg,
		retrieval: store,
		opts:      opts,
		logger:    logger.With("system", "analyst"),
	}
}

func (a *agentAnalyst) Analyze(ctx context.Context, prompt string) (string, error) {
	passages := a.gather(ctx, prompt)
	composed := Compose(prompt, passages)

	ag, err := agent.New(&a.cfg)
	if err != nil {
		return "", fmt.Errorf("%w: create agent: %w", ErrAgent, err)
	}

	var lastErr error
	backoff := a.opts.Backoff

	for attempt := 1; attempt <= a.opts.MaxAttempts; attempt++ {
		resp, err := ag.Chat(ctx, composed)
		if err == nil {
			return resp.Content(), nil
		}
		lastErr = err

		a.logger.Warn("chat attempt failed",
			"attempt", attempt,
			"max_attempts", a.opts.MaxAttempts,
			"error", err,
		)

		if attempt == a.opts.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %w", ErrAgent, ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return "", fmt.Errorf("%w: after %d attempts: %w", ErrAgent, a.opts.MaxAttempts, lastErr)
}

// gather fetches supporting passages, degrading to an empty set when the
// retrieval capability is unset or unreachable.
func (a *agentAnalyst) gather(ctx context.Context, prompt string) []retrieval.Passage {
	if a.retrieval == nil {
		a.logger.Warn("retrieval not configured, running degraded")
		return nil
	}

	passages, err := a.retrieval.QuerySimilar(ctx, prompt, a.opts.TopK)
	if err != nil {
		a.logger.Warn(
			"retrieval unavailable, running degraded",
			"error", fmt.Errorf("%w: %w", ErrRetrievalUnavailable, err),
		)
		return nil
	}

	return passages
}
