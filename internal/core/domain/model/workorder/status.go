package workorder

import (
	"fmt"

	"workorder/internal/pkg/errs"
)

// Status represents the lifecycle state of a work order.
// It implements a forward-only state machine: the wizard always creates
// orders as Pending, and only an external fulfillment process advances them.
//
// State transitions:
//
//	Pending ──> Processing ──> Completed
//
// Editing an order never changes its status; there are no backward
// transitions and Completed is final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when a work order is committed.
	// The intake wizard only ever produces Pending orders.
	Pending

	// Processing indicates the fulfillment process has picked up the order.
	Processing

	// Completed indicates the order has been fulfilled.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Completed:  "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Completed:  "Completed",
	}
}

// ParseStatus converts an external string ("Pending", "Processing",
// "Completed") into a Status. Used when reading filter specs and API input.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Completed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAdvance checks whether the status allows a forward transition
// without performing it. Completed and Unknown cannot advance.
func (s Status) ValidateAdvance() error {
	if s != Pending && s != Processing {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to advance", s.String()),
		)
	}
	return nil
}

// Advance transitions the status one step forward.
//
// Valid transitions:
//   - Pending -> Processing
//   - Processing -> Completed
//
// Returns the new status, or an error if the current status is Completed
// or Unknown. Status never moves backward and never skips a step.
func (s Status) Advance() (Status, error) {
	if err := s.ValidateAdvance(); err != nil {
		return 0, err
	}

	if s == Pending {
		return Processing, nil
	}
	return Completed, nil
}
