package workflow

import "sync/atomic"

// Token signals cooperative cancellation to a running analysis. The engine
// polls it at sub-phase boundaries: a sub-phase that has started always
// runs to completion, and cancellation takes effect before the next one.
type Token struct {
	cancelled atomic.Bool
}

// NewToken returns a fresh, uncancelled token.
func NewToken() *Token {
	return &Token{}
}

// Cancel marks the token. Idempotent; safe to call from any goroutine.
func (t *Token) Cancel() {
	t.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (t *Token) Cancelled() bool {
	return t.cancelled.Load()
}
