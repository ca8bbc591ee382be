package kernel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"workorder/internal/pkg/errs"
)

// ErrWorkOrderIDIsNotConstructed indicates that a WorkOrderID was not created
// through NewWorkOrderID or WorkOrderIDFromString. The zero value is invalid.
var ErrWorkOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"WorkOrderID must be created via NewWorkOrderID or WorkOrderIDFromString",
)

var workOrderIDPattern = regexp.MustCompile(`^WO-\d{3,}$`)

// WorkOrderID is a value object identifying a work order. Identifiers are
// human readable, sequential, and formatted as "WO-NNN" with the sequence
// number zero-padded to at least three digits ("WO-001", "WO-042", "WO-1200").
//
// Sequence numbers are assigned by the store as 1 + the current order count.
// Deletion is out of scope, so numbers are never reused. WorkOrderID is
// immutable and safe for concurrent use.
type WorkOrderID struct {
	value string
}

// NewWorkOrderID creates a WorkOrderID from a sequence number.
// The sequence must be at least 1.
//
// Example:
//
//	id, err := kernel.NewWorkOrderID(7)
//	// id.String() == "WO-007"
func NewWorkOrderID(sequence int) (WorkOrderID, error) {
	if sequence < 1 {
		return WorkOrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"sequence", fmt.Errorf("%d is not greater than 0", sequence))
	}
	return WorkOrderID{value: fmt.Sprintf("WO-%03d", sequence)}, nil
}

// WorkOrderIDFromString parses a WorkOrderID from its string form.
// Used when reconstructing identifiers from persistence or request paths.
func WorkOrderIDFromString(s string) (WorkOrderID, error) {
	if s == "" {
		return WorkOrderID{}, errs.NewValueIsRequiredError("workOrderId")
	}
	if !workOrderIDPattern.MatchString(s) {
		return WorkOrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"workOrderId", fmt.Errorf("%q does not match WO-NNN", s))
	}
	return WorkOrderID{value: s}, nil
}

// Validate ensures the WorkOrderID was properly constructed.
// Returns ErrWorkOrderIDIsNotConstructed for the zero value.
func (id WorkOrderID) Validate() error {
	if id.value == "" {
		return ErrWorkOrderIDIsNotConstructed
	}
	return nil
}

// Sequence returns the numeric part of the identifier.
func (id WorkOrderID) Sequence() int {
	n, _ := strconv.Atoi(strings.TrimPrefix(id.value, "WO-"))
	return n
}

// IsEqual compares two identifiers by value.
func (id WorkOrderID) IsEqual(other WorkOrderID) bool {
	return id.value == other.value
}

// String implements fmt.Stringer and returns the "WO-NNN" form.
func (id WorkOrderID) String() string {
	return id.value
}
