package commands

import (
	"context"
	"time"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"
)

// CreateWorkOrderCommandHandler handles the business logic for work order
// creation. Assigns the next sequential WO-NNN identifier, stamps the
// creation time, and persists the order in Pending status.
//
// Example:
//
//	handler := NewCreateWorkOrderCommandHandler(uowFactory, catalog)
//	cmd, _ := NewCreateWorkOrderCommand(details, products)
//
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("work order creation failed: %w", err)
//	}
//	// Order is now stored and visible on the dashboard
type CreateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	catalog    workorder.Catalog
}

// NewCreateWorkOrderCommandHandler creates a handler for work order creation.
// Requires a WorkOrderUoWFactory for transactional persistence and the
// product catalog used to validate requested products.
func NewCreateWorkOrderCommandHandler(
	uowFactory WorkOrderUoWFactory,
	catalog workorder.Catalog,
) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the work order creation command.
// The identifier sequence is 1 plus the current order count; deletion is not
// supported, so sequence numbers are never reused. Returns the assigned
// identifier on success.
func (h *CreateWorkOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateWorkOrderCommand,
) (kernel.WorkOrderID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.WorkOrderID{}, err
	}

	products := make([]workorder.LineItem, 0, len(cmd.Products()))
	for _, p := range cmd.Products() {
		item, err := workorder.NewLineItem(p.Name, p.Quantity, h.catalog)
		if err != nil {
			return kernel.WorkOrderID{}, err
		}
		products = append(products, item)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.WorkOrderID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.WorkOrderRepository()
	count, err := orderRepo.Count(ctx)
	if err != nil {
		return kernel.WorkOrderID{}, err
	}

	id, err := kernel.NewWorkOrderID(count + 1)
	if err != nil {
		return kernel.WorkOrderID{}, err
	}

	details := cmd.Details()
	aggregate, err := workorder.NewWorkOrder(id, workorder.Details{
		RequesterName:       details.RequesterName,
		RequesterEmail:      details.RequesterEmail,
		RetailerID:          details.RetailerID,
		RetailerName:        details.RetailerName,
		ShippingAddress:     details.ShippingAddress,
		OnSiteContactName:   details.OnSiteContactName,
		OnSiteContactNumber: details.OnSiteContactNumber,
		DeliveryDate:        details.DeliveryDate,
	}, products, time.Now().UTC())
	if err != nil {
		return kernel.WorkOrderID{}, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return kernel.WorkOrderID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.WorkOrderID{}, err
	}

	return id, nil
}
