package workorder

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"time"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/pkg/errs"
)

// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was not
// created through NewWorkOrder or RestoreWorkOrder. This ensures all work
// orders are properly validated.
var ErrWorkOrderIsNotConstructed = errors.New(
	"WorkOrder must be created via NewWorkOrder or RestoreWorkOrder constructor",
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// Details groups the logistics fields collected in the first wizard phase:
// who requested the order, which retailer receives it, and where and how the
// shipment is delivered.
type Details struct {
	RequesterName       string
	RequesterEmail      string
	RetailerID          string
	RetailerName        string
	ShippingAddress     string
	OnSiteContactName   string
	OnSiteContactNumber string
	DeliveryDate        kernel.DeliveryDate
}

// WorkOrder is the aggregate root for a committed shipping request. It is
// produced by the intake wizard and consumed by the store and the listing
// engine.
//
// WorkOrder follows these invariants:
//   - Must have a valid WO-NNN identifier
//   - RetailerName is a denormalized snapshot taken at creation time
//   - Products is non-empty and each quantity is at least 1
//   - CreatedAt is set once and never mutated
//   - Status starts at Pending; only Advance moves it, always forward
//   - Can only be created through NewWorkOrder or RestoreWorkOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type WorkOrder struct {
	id        kernel.WorkOrderID
	details   Details
	products  []LineItem
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewWorkOrder creates a new WorkOrder in Pending status. This is the path
// taken when the wizard commits a create-mode draft.
//
// Parameters:
//   - id: sequential WO-NNN identifier assigned by the store
//   - details: validated phase-one logistics fields
//   - products: non-empty list of line items
//   - createdAt: system-assigned creation timestamp, immutable afterwards
//
// Returns the created order, or a joined validation error if any field
// violates an invariant.
func NewWorkOrder(
	id kernel.WorkOrderID,
	details Details,
	products []LineItem,
	createdAt time.Time,
) (*WorkOrder, error) {
	wo := &WorkOrder{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		wo.setID(id),
		wo.setDetails(details),
		wo.setProducts(products),
		wo.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return wo, nil
}

// RestoreWorkOrder reconstructs a WorkOrder from persistence with an
// arbitrary status. Used by repositories and by the update path, which must
// preserve the stored status and creation time.
func RestoreWorkOrder(
	id kernel.WorkOrderID,
	details Details,
	products []LineItem,
	status Status,
	createdAt time.Time,
) (*WorkOrder, error) {
	wo := &WorkOrder{
		isConstructed: true,
	}

	if err := errors.Join(
		wo.setID(id),
		wo.setDetails(details),
		wo.setProducts(products),
		wo.setStatus(status),
		wo.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return wo, nil
}

// Validate ensures the WorkOrder instance was properly constructed.
// Returns ErrWorkOrderIsNotConstructed otherwise. Call this when
// reconstructing orders from persistence to ensure data integrity.
func (wo *WorkOrder) Validate() error {
	if wo == nil || !wo.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two work orders by their identifiers.
func (wo *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && wo.id.IsEqual(other.id)
}

// ID returns the work order's WO-NNN identifier.
func (wo *WorkOrder) ID() kernel.WorkOrderID {
	return wo.id
}

// Details returns the logistics fields of the order.
func (wo *WorkOrder) Details() Details {
	return wo.details
}

// Products returns the ordered line items. The returned slice is a copy.
func (wo *WorkOrder) Products() []LineItem {
	return append([]LineItem(nil), wo.products...)
}

// ProductCount returns the number of line items.
func (wo *WorkOrder) ProductCount() int {
	return len(wo.products)
}

// Status returns the current lifecycle status.
func (wo *WorkOrder) Status() Status {
	return wo.status
}

// CreatedAt returns the immutable creation timestamp.
func (wo *WorkOrder) CreatedAt() time.Time {
	return wo.createdAt
}

// ApplyEdit replaces every field except the identifier, the creation time,
// and the status. Editing an order never resets its fulfillment progress.
func (wo *WorkOrder) ApplyEdit(details Details, products []LineItem) error {
	if err := wo.Validate(); err != nil {
		return err
	}

	edited := WorkOrder{isConstructed: true}
	if err := errors.Join(
		edited.setDetails(details),
		edited.setProducts(products),
	); err != nil {
		return err
	}

	wo.details = edited.details
	wo.products = edited.products
	return nil
}

// Advance moves the status one step forward: Pending to Processing, or
// Processing to Completed. The intake wizard never calls this; it is the
// entry point for the external fulfillment process.
func (wo *WorkOrder) Advance() error {
	newStatus, err := wo.status.Advance()
	if err != nil {
		return err
	}

	wo.status = newStatus
	return nil
}

func (wo *WorkOrder) setID(id kernel.WorkOrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	wo.id = id
	return nil
}

func (wo *WorkOrder) setDetails(details Details) error {
	if err := errors.Join(
		validateMinLength("requesterName", details.RequesterName, 2),
		validateEmail(details.RequesterEmail),
		validateRequired("retailerId", details.RetailerID),
		validateMinLength("retailerName", details.RetailerName, 2),
		validateMinLength("shippingAddress", details.ShippingAddress, 10),
		validateMinLength("onSiteContactName", details.OnSiteContactName, 2),
		validatePhone(details.OnSiteContactNumber),
		details.DeliveryDate.Validate(),
	); err != nil {
		return err
	}

	wo.details = details
	return nil
}

func (wo *WorkOrder) setProducts(products []LineItem) error {
	if len(products) == 0 {
		return errs.NewValueIsRequiredError("products")
	}
	for _, item := range products {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	wo.products = append([]LineItem(nil), products...)
	return nil
}

func (wo *WorkOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	wo.status = status
	return nil
}

func (wo *WorkOrder) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	wo.createdAt = createdAt
	return nil
}

func validateRequired(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

// maxFieldLength is the upper bound for free-text fields.
const maxFieldLength = 500

func validateMinLength(param, value string, minLen int) error {
	if len(value) < minLen || len(value) > maxFieldLength {
		return errs.NewValueIsOutOfRangeError(param, len(value), minLen, maxFieldLength)
	}
	return nil
}

func validateEmail(value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("requesterEmail")
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("requesterEmail", err)
	}
	return nil
}

func validatePhone(value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("onSiteContactNumber")
	}
	if !phonePattern.MatchString(value) {
		return errs.NewValueIsInvalidErrorWithCause(
			"onSiteContactNumber", fmt.Errorf("%q is not an international phone number", value))
	}
	return nil
}
