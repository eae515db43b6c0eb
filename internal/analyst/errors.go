package analyst

import "errors"

// Sentinel errors for agent operations.
var (
	// ErrAgent indicates the model call failed after the internal
	// retry budget was exhausted.
	ErrAgent = errors.New("agent call failed")

	// ErrRetrievalUnavailable indicates retrieval could not be reached.
	// The analyst degrades to zero-retrieval operation rather than
	// surfacing this into the phase loop.
	ErrRetrievalUnavailable = errors.New("retrieval unavailable")
)
