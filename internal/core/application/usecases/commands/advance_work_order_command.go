package commands

import (
	"errors"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/pkg/guard"
)

var ErrAdvanceWorkOrderCommandIsNotConstructed = errors.New(
	"AdvanceWorkOrderCommand must be created via NewAdvanceWorkOrderCommand constructor",
)

// AdvanceWorkOrderCommand represents a request from the fulfillment process
// to move a work order one step forward in its lifecycle: Pending to
// Processing, or Processing to Completed.
type AdvanceWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.WorkOrderID

	guard guard.ConstructorGuard
}

// NewAdvanceWorkOrderCommand creates a command to advance a work order's
// status. Validates that the target identifier is valid.
func NewAdvanceWorkOrderCommand(workOrderID kernel.WorkOrderID) (AdvanceWorkOrderCommand, error) {
	advanceCommand := AdvanceWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := advanceCommand.setWorkOrderID(workOrderID); err != nil {
		return AdvanceWorkOrderCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceWorkOrderCommandIsNotConstructed if validation fails.
func (c AdvanceWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the identifier of the order being advanced.
func (c AdvanceWorkOrderCommand) WorkOrderID() kernel.WorkOrderID {
	return c.workOrderID
}

func (c *AdvanceWorkOrderCommand) setWorkOrderID(workOrderID kernel.WorkOrderID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}
