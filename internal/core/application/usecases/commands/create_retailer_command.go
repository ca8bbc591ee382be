package commands

import (
	"errors"

	"workorder/internal/pkg/errs"
	"workorder/internal/pkg/guard"
)

var ErrCreateRetailerCommandIsNotConstructed = errors.New(
	"CreateRetailerCommand must be created via NewCreateRetailerCommand constructor",
)

// CreateRetailerCommand represents a request to register a new retailer,
// typically issued from the wizard's inline creation subflow. Full field
// validation (state code, zip format, lengths) happens in the domain model.
type CreateRetailerCommand struct { //nolint:recvcheck //using for validation
	id      string
	name    string
	street  string
	city    string
	state   string
	zipCode string

	guard guard.ConstructorGuard
}

// NewCreateRetailerCommand creates a command to register a retailer under
// the given external identifier.
// Validates that the identifier and every address component are present.
func NewCreateRetailerCommand(id, name, street, city, state, zipCode string) (CreateRetailerCommand, error) {
	retailerCommand := CreateRetailerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		retailerCommand.setField("retailerId", id, &retailerCommand.id),
		retailerCommand.setField("name", name, &retailerCommand.name),
		retailerCommand.setField("street", street, &retailerCommand.street),
		retailerCommand.setField("city", city, &retailerCommand.city),
		retailerCommand.setField("state", state, &retailerCommand.state),
		retailerCommand.setField("zipCode", zipCode, &retailerCommand.zipCode),
	); err != nil {
		return CreateRetailerCommand{}, err
	}

	return retailerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRetailerCommandIsNotConstructed if validation fails.
func (c CreateRetailerCommand) Validate() error {
	return c.guard.Validate(ErrCreateRetailerCommandIsNotConstructed)
}

// ID returns the retailer's external identifier.
func (c CreateRetailerCommand) ID() string {
	return c.id
}

// Name returns the retailer's business name.
func (c CreateRetailerCommand) Name() string {
	return c.name
}

// Street returns the street line of the retailer's address.
func (c CreateRetailerCommand) Street() string {
	return c.street
}

// City returns the city of the retailer's address.
func (c CreateRetailerCommand) City() string {
	return c.city
}

// State returns the two-letter state code of the retailer's address.
func (c CreateRetailerCommand) State() string {
	return c.state
}

// ZipCode returns the ZIP code of the retailer's address.
func (c CreateRetailerCommand) ZipCode() string {
	return c.zipCode
}

func (c *CreateRetailerCommand) setField(param, value string, target *string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}

	*target = value
	return nil
}
