package kernel

import (
	"fmt"
	"time"

	"workorder/internal/pkg/errs"
)

// ErrDeliveryDateIsNotConstructed indicates that a DeliveryDate was not created
// through NewDeliveryDate or RestoreDeliveryDate. The zero value is invalid.
var ErrDeliveryDateIsNotConstructed = errs.NewValueIsRequiredError(
	"DeliveryDate must be created via NewDeliveryDate or RestoreDeliveryDate",
)

// DeliveryDate is a value object for a requested delivery date. The date is
// validated at entry time: it must be today or later, and no more than one
// year ahead. The window is not re-checked after the order is stored, so an
// order edited months later keeps its original date even if it has passed.
//
// DeliveryDate carries calendar-day precision; the time-of-day component is
// truncated.
type DeliveryDate struct {
	value time.Time
}

// NewDeliveryDate creates a validated DeliveryDate. The now argument supplies
// the clock so callers and tests control what "today" means.
func NewDeliveryDate(value time.Time, now time.Time) (DeliveryDate, error) {
	if value.IsZero() {
		return DeliveryDate{}, errs.NewValueIsRequiredError("requestedDeliveryDate")
	}

	day := truncateToDay(value)
	today := truncateToDay(now)

	if day.Before(today) {
		return DeliveryDate{}, errs.NewValueIsInvalidErrorWithCause(
			"requestedDeliveryDate",
			fmt.Errorf("%s is before today", day.Format(time.DateOnly)))
	}
	// The window is calendar-based so the same day next year is always
	// accepted, including across a leap day.
	if day.After(today.AddDate(1, 0, 0)) {
		return DeliveryDate{}, errs.NewValueIsInvalidErrorWithCause(
			"requestedDeliveryDate",
			fmt.Errorf("%s is more than one year ahead", day.Format(time.DateOnly)))
	}

	return DeliveryDate{value: day}, nil
}

// RestoreDeliveryDate reconstructs a DeliveryDate from persistence without
// re-applying the entry window check.
func RestoreDeliveryDate(value time.Time) (DeliveryDate, error) {
	if value.IsZero() {
		return DeliveryDate{}, errs.NewValueIsRequiredError("requestedDeliveryDate")
	}
	return DeliveryDate{value: truncateToDay(value)}, nil
}

// Validate ensures the DeliveryDate was properly constructed.
func (d DeliveryDate) Validate() error {
	if d.value.IsZero() {
		return ErrDeliveryDateIsNotConstructed
	}
	return nil
}

// Time returns the underlying calendar day.
func (d DeliveryDate) Time() time.Time {
	return d.value
}

// IsEqual compares two delivery dates by calendar day.
func (d DeliveryDate) IsEqual(other DeliveryDate) bool {
	return d.value.Equal(other.value)
}

// String returns the ISO date form, e.g. "2026-09-15".
func (d DeliveryDate) String() string {
	return d.value.Format(time.DateOnly)
}

func truncateToDay(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, t.Location())
}
