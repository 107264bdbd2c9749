package types

import "errors"

// Report statuses. Every record carries exactly one of these; transitions
// are accepted as given by the caller, the engine does not derive them.
const (
	StatusOpen     = "Open"
	StatusInReview = "In Review"
	StatusClosed   = "Closed"
)

// ErrInvalidStatus reports a status value outside the enum.
var ErrInvalidStatus = errors.New("invalid status value")

// validStatuses is the set of recognized status values.
var validStatuses = map[string]bool{
	StatusOpen:     true,
	StatusInReview: true,
	StatusClosed:   true,
}

// IsValidStatus reports whether s is a recognized status.
func IsValidStatus(s string) bool {
	return validStatuses[s]
}

// Statuses returns the status values in triage order.
func Statuses() []string {
	return []string{StatusOpen, StatusInReview, StatusClosed}
}
