package order

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow the
// canonical courier workflow.
//
// State transitions:
//
//	New ──> Accepted ──> Completed
//
// No transition skips a state and none reverses; Completed is terminal.
// Status is a value object that validates state transitions and provides the
// wire strings used for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status of every order handed out by the order source.
	// Orders in this status are waiting for the courier to accept them.
	New

	// Accepted indicates the courier has taken the order for delivery.
	Accepted

	// Completed indicates the order has been delivered.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns the wire string for every Status value,
// including Unknown, to support string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		New:       "new",
		Accepted:  "accepted",
		Completed: "completed",
	}
}

// getValidStatusStrings returns only the statuses an order may legitimately
// hold, to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "new",
		Accepted:  "accepted",
		Completed: "completed",
	}
}

// StatusFromString parses a wire string into a Status.
// Used by adapters reconstructing orders from external representations.
// Returns an error for anything other than "new", "accepted" or "completed".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are New, Accepted and Completed; Unknown (0) and any other
// values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire string of the status: "new", "accepted" or
// "completed" for valid values and "unknown" otherwise.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - New -> Accepted
//
// Every other source state is rejected: accepting an already accepted or
// completed order is not a defined transition, and an invalid-transition
// error is returned instead of silently overwriting the state.
//
// Returns:
//   - (Accepted, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Accept() (Status, error) {
	if s != New {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}

	return Accepted, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Accepted -> Completed
//
// Completing a new order skips the canonical path and is rejected, as is a
// second completion: Completed is terminal.
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Complete() (Status, error) {
	if s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
