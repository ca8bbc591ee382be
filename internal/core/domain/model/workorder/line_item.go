package workorder

import (
	"fmt"

	"workorder/internal/pkg/errs"
	"workorder/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem factory.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError(
	"LineItem must be created via NewLineItem constructor",
)

// LineItem is one product/quantity pair within a work order. Line items are
// owned exclusively by their work order and are never shared across orders.
//
// Invariants:
//   - Name is drawn from the product catalog
//   - Quantity is at least 1
type LineItem struct { //nolint:recvcheck //using for validation
	name     string
	quantity int

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated LineItem. The name must be a catalog entry
// and the quantity must be at least 1.
func NewLineItem(name string, quantity int, catalog Catalog) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := item.setName(name, catalog); err != nil {
		return LineItem{}, err
	}
	if err := item.setQuantity(quantity); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// RestoreLineItem reconstructs a LineItem from persistence. The catalog check
// is skipped so orders survive catalog changes made after they were stored.
func RestoreLineItem(name string, quantity int) (LineItem, error) {
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("product name")
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineItemQuantity)
	}

	return LineItem{
		name:     name,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the LineItem was created through a constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// Name returns the catalog product name.
func (li LineItem) Name() string {
	return li.name
}

// Quantity returns the number of cases requested.
func (li LineItem) Quantity() int {
	return li.quantity
}

const maxLineItemQuantity = 9999

func (li *LineItem) setName(name string, catalog Catalog) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if !catalog.Contains(name) {
		return errs.NewValueIsInvalidErrorWithCause(
			"product name", fmt.Errorf("%q is not in the product catalog", name))
	}
	li.name = name
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 || quantity > maxLineItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineItemQuantity)
	}
	li.quantity = quantity
	return nil
}
