package commands

import (
	"errors"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/pkg/errs"
	"workorder/internal/pkg/guard"
)

var (
	ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
		"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
	)
	ErrProductsAreRequired = errors.New("at least one product is required")
)

// ProductInput is one requested catalog product with its quantity,
// as captured by the second wizard phase.
type ProductInput struct {
	Name     string
	Quantity int
}

// WorkOrderDetailsInput carries the phase-one logistics fields of a work
// order. Full field validation happens in the domain model; commands only
// check structural requirements.
type WorkOrderDetailsInput struct {
	RequesterName       string
	RequesterEmail      string
	RetailerID          string
	RetailerName        string
	ShippingAddress     string
	OnSiteContactName   string
	OnSiteContactNumber string
	DeliveryDate        kernel.DeliveryDate
}

// CreateWorkOrderCommand represents a request to commit a completed wizard
// draft as a new work order. The store assigns the sequential WO-NNN
// identifier, the creation timestamp, and the initial Pending status.
//
// Example:
//
//	cmd, err := NewCreateWorkOrderCommand(details, products)
//	if err != nil {
//	    return fmt.Errorf("invalid work order data: %w", err)
//	}
//
//	handler := NewCreateWorkOrderCommandHandler(uowFactory, catalog)
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create work order: %w", err)
//	}
//	fmt.Printf("Work order %s created in Pending status", id)
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	details  WorkOrderDetailsInput
	products []ProductInput

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand creates a command to commit a new work order.
// Validates that a retailer is referenced and at least one product is
// requested. Returns an error if any validation fails.
func NewCreateWorkOrderCommand(
	details WorkOrderDetailsInput,
	products []ProductInput,
) (CreateWorkOrderCommand, error) {
	createCommand := CreateWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setDetails(details),
		createCommand.setProducts(products),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateWorkOrderCommandIsNotConstructed if validation fails.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// Details returns the phase-one logistics fields.
func (c CreateWorkOrderCommand) Details() WorkOrderDetailsInput {
	return c.details
}

// Products returns the requested products.
func (c CreateWorkOrderCommand) Products() []ProductInput {
	return c.products
}

func (c *CreateWorkOrderCommand) setDetails(details WorkOrderDetailsInput) error {
	if details.RetailerID == "" {
		return errs.NewValueIsRequiredError("retailerId")
	}

	c.details = details
	return nil
}

func (c *CreateWorkOrderCommand) setProducts(products []ProductInput) error {
	if len(products) == 0 {
		return ErrProductsAreRequired
	}

	c.products = append([]ProductInput(nil), products...)
	return nil
}
