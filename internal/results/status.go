package results

import "slices"

// Status represents the recorded state of a sub-phase execution.
// Pending is never stored; it is the projection of an absent record.
type Status string

// Result states.
const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusPending   Status = "pending"
)

var stored = []Status{StatusCompleted, StatusFailed}

// ParseStatus validates a string as a storable result status.
// Returns ErrInvalidStatus for unrecognized values and for pending,
// which only exists as a read-side projection.
func ParseStatus(s string) (Status, error) {
	v := Status(s)
	if !slices.Contains(stored, v) {
		return "", ErrInvalidStatus
	}
	return v, nil
}
