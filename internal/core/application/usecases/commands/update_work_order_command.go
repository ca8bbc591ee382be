package commands

import (
	"errors"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/pkg/errs"
	"workorder/internal/pkg/guard"
)

var ErrUpdateWorkOrderCommandIsNotConstructed = errors.New(
	"UpdateWorkOrderCommand must be created via NewUpdateWorkOrderCommand constructor",
)

// UpdateWorkOrderCommand represents a request to replace the editable fields
// of an existing work order. The identifier, creation timestamp, and status
// are never touched by an edit.
type UpdateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.WorkOrderID
	details     WorkOrderDetailsInput
	products    []ProductInput

	guard guard.ConstructorGuard
}

// NewUpdateWorkOrderCommand creates a command to edit an existing work order.
// Validates that the target identifier is valid, a retailer is referenced,
// and at least one product is requested.
func NewUpdateWorkOrderCommand(
	workOrderID kernel.WorkOrderID,
	details WorkOrderDetailsInput,
	products []ProductInput,
) (UpdateWorkOrderCommand, error) {
	updateCommand := UpdateWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setWorkOrderID(workOrderID),
		updateCommand.setDetails(details),
		updateCommand.setProducts(products),
	); err != nil {
		return UpdateWorkOrderCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateWorkOrderCommandIsNotConstructed if validation fails.
func (c UpdateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the identifier of the order being edited.
func (c UpdateWorkOrderCommand) WorkOrderID() kernel.WorkOrderID {
	return c.workOrderID
}

// Details returns the replacement logistics fields.
func (c UpdateWorkOrderCommand) Details() WorkOrderDetailsInput {
	return c.details
}

// Products returns the replacement products.
func (c UpdateWorkOrderCommand) Products() []ProductInput {
	return c.products
}

func (c *UpdateWorkOrderCommand) setWorkOrderID(workOrderID kernel.WorkOrderID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *UpdateWorkOrderCommand) setDetails(details WorkOrderDetailsInput) error {
	if details.RetailerID == "" {
		return errs.NewValueIsRequiredError("retailerId")
	}

	c.details = details
	return nil
}

func (c *UpdateWorkOrderCommand) setProducts(products []ProductInput) error {
	if len(products) == 0 {
		return ErrProductsAreRequired
	}

	c.products = append([]ProductInput(nil), products...)
	return nil
}
