package commands

import (
	"context"
)

// AdvanceWorkOrderCommandHandler handles status advancement requests from the
// fulfillment process. Advancement only ever moves forward; a Completed order
// cannot be advanced and the attempt fails without modifying the order.
type AdvanceWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewAdvanceWorkOrderCommandHandler creates a handler for status advancement.
func NewAdvanceWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) AdvanceWorkOrderCommandHandler {
	return AdvanceWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status advancement command.
// Returns errs.ObjectNotFoundError if the order does not exist, or a
// validation error if it is already Completed. A failed advancement never
// modifies the stored order.
func (h *AdvanceWorkOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceWorkOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.WorkOrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Advance(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
