package commands

import (
	"context"

	"workorder/internal/core/domain/model/workorder"
)

// UpdateWorkOrderCommandHandler handles the business logic for work order
// edits. Loads the stored aggregate, replaces its editable fields, and
// persists the result. Fulfillment progress survives edits: the status the
// order had before the edit is the status it has after.
type UpdateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	catalog    workorder.Catalog
}

// NewUpdateWorkOrderCommandHandler creates a handler for work order edits.
func NewUpdateWorkOrderCommandHandler(
	uowFactory WorkOrderUoWFactory,
	catalog workorder.Catalog,
) UpdateWorkOrderCommandHandler {
	return UpdateWorkOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the work order edit command.
// Returns errs.ObjectNotFoundError if the target order no longer exists,
// for example when it was removed between draft start and commit.
func (h *UpdateWorkOrderCommandHandler) Handle(ctx context.Context, cmd UpdateWorkOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	products := make([]workorder.LineItem, 0, len(cmd.Products()))
	for _, p := range cmd.Products() {
		item, err := workorder.NewLineItem(p.Name, p.Quantity, h.catalog)
		if err != nil {
			return err
		}
		products = append(products, item)
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

	details := cmd.Details()
	if err = aggregate.ApplyEdit(workorder.Details{
		RequesterName:       details.RequesterName,
		RequesterEmail:      details.RequesterEmail,
		RetailerID:          details.RetailerID,
		RetailerName:        details.RetailerName,
		ShippingAddress:     details.ShippingAddress,
		OnSiteContactName:   details.OnSiteContactName,
		OnSiteContactNumber: details.OnSiteContactNumber,
		DeliveryDate:        details.DeliveryDate,
	}, products); err != nil {
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
