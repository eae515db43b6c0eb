// Package workflow implements the phase execution engine for Vyve.
// It provides the cancellation token, prompt context assembly, and the
// 4-node state graph (resolve → independent → dependent → finalize) that
// runs every sub-phase of a single analysis phase.
package workflow

import "errors"

// Sentinel errors for workflow operations.
var (
	ErrConfiguration = errors.New("invalid phase configuration")
	ErrResolveFailed = errors.New("failed to resolve sub-phases")
	ErrExecuteFailed = errors.New("phase execution failed")
	ErrPersistFailed = errors.New("failed to persist result")
)
