package retrieval

import "errors"

// ErrUnavailable indicates the retrieval store could not be reached.
// "No matches" is never an error; callers degrade gracefully on this one.
var ErrUnavailable = errors.New("retrieval store unavailable")
