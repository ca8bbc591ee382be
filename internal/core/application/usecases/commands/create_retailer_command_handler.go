package commands

import (
	"context"

	"workorder/internal/core/domain/model/retailer"
)

// CreateRetailerCommandHandler handles the business logic for retailer
// registration. Persists the retailer under its externally assigned id so it
// is immediately selectable by every subsequent work order.
type CreateRetailerCommandHandler struct {
	uowFactory RetailerUoWFactory
}

// NewCreateRetailerCommandHandler creates a handler for retailer registration.
func NewCreateRetailerCommandHandler(uowFactory RetailerUoWFactory) CreateRetailerCommandHandler {
	return CreateRetailerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the retailer registration command.
// Returns the created retailer so callers can auto-select it and derive a
// shipping address from its components.
func (h *CreateRetailerCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRetailerCommand,
) (*retailer.Retailer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := retailer.NewRetailer(
		cmd.ID(),
		cmd.Name(),
		cmd.Street(),
		cmd.City(),
		cmd.State(),
		cmd.ZipCode(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RetailerRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
