package phases

import (
	"encoding/json"
	"slices"
)

// Status represents the lifecycle state of a phase.
type Status string

// Phase lifecycle states. A phase is idle until an analysis run picks it
// up, in_progress while its sub-phases execute, and ends completed, or
// incomplete when the run was cancelled mid-phase.
const (
	StatusIdle       Status = "idle"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusIncomplete Status = "incomplete"
)

var statuses = []Status{
	StatusIdle,
	StatusInProgress,
	StatusCompleted,
	StatusIncomplete,
}

// Statuses returns the list of valid phase statuses.
func Statuses() []Status {
	return statuses
}

// ParseStatus validates a string as a known phase status.
// Returns ErrInvalidStatus if the value is not recognized.
func ParseStatus(s string) (Status, error) {
	v := Status(s)
	if !slices.Contains(statuses, v) {
		return "", ErrInvalidStatus
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is a known status value.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
