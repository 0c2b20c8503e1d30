package letter

import (
	"fmt"

	"pigeonpost/internal/pkg/errs"
)

// Status represents the lifecycle state of a letter.
// It implements a state machine with defined transitions to ensure
// letters follow the correct delivery workflow.
//
// State transitions:
//
//	Queued ──> Dispatched ──> Delivered
//	   ▲            │
//	   └────────────┘
//	  (recall allowed)
//
// Delivered is a terminal state: any further transition attempt fails with
// an IllegalStateError. Any pair not in the table above (including
// self-transitions) fails with an InvalidTransitionError naming the pair.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Queued is the initial status when a letter is first created.
	// Letters in this status are waiting to be dispatched with their carrier.
	Queued

	// Dispatched indicates the letter is in flight with its carrier.
	// A dispatched letter may be recalled back to the queue.
	Dispatched

	// Delivered indicates the letter reached its recipient.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Queued:     "queued",
		Dispatched: "dispatched",
		Delivered:  "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Queued:     "queued",
		Dispatched: "dispatched",
		Delivered:  "delivered",
	}
}

// transitions lists every allowed (from -> to) pair.
// Delivered has no outgoing transitions.
func transitions() map[Status][]Status {
	//nolint:exhaustive // Delivered is terminal and has no entry
	return map[Status][]Status{
		Queued:     {Dispatched},
		Dispatched: {Delivered, Queued},
	}
}

// ParseStatus converts a raw string to a Status.
// Returns a ValidationError for unknown values.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValidationErrorWithCause(
		"status",
		"status is invalid",
		fmt.Errorf("%q is not one of queued, dispatched, delivered", s),
	)
}

// Validate checks if the Status value is one of the three defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValidationErrorWithCause(
			"status",
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status, matching the persisted
// representation. Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// TransitionTo validates the requested transition and returns the next status.
//
// Returns:
//   - (next, nil) when the pair is in the transition table
//   - IllegalStateError when the current status is terminal
//   - InvalidTransitionError naming the pair for any other request
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, errs.NewIllegalStateError("change status", s.String())
	}

	for _, allowed := range transitions()[s] {
		if allowed == next {
			return next, nil
		}
	}

	return Unknown, errs.NewInvalidTransitionError(s.String(), next.String())
}
