package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/core/domain/services"
)

// ListWorkOrdersQueryHandler reads the work order store for the dashboard.
// Loads the full store newest-first, then applies the pure filter service,
// so the visible rows are always re-derivable from the store contents.
type ListWorkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListWorkOrdersQueryHandler creates a handler for work order listing.
// Requires a GORM database connection for query execution.
func NewListWorkOrdersQueryHandler(db *gorm.DB) ListWorkOrdersQueryHandler {
	return ListWorkOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// Work orders are returned newest-first; filtering never reorders them.
func (h ListWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListWorkOrdersQuery,
) ([]ListWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := services.FilterWorkOrders(aggregates, query.Filter())

	responses := make([]ListWorkOrdersQueryResponse, 0, len(filtered))
	for _, aggregate := range filtered {
		responses = append(responses, toResponse(aggregate))
	}

	return responses, nil
}

func (h ListWorkOrdersQueryHandler) loadAll(ctx context.Context) ([]*workorder.WorkOrder, error) {
	items, err := h.loadItems(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			requester_name,
			requester_email,
			retailer_id,
			retailer_name,
			shipping_address,
			on_site_contact_name,
			on_site_contact_number,
			delivery_date,
			status,
			created_at
		FROM work_orders
		ORDER BY created_at DESC, sequence DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aggregates := make([]*workorder.WorkOrder, 0)

	for rows.Next() {
		var (
			id, requesterName, requesterEmail, retailerID, retailerName string
			shippingAddress, contactName, contactNumber, status         string
			deliveryDate, createdAt                                     time.Time
		)

		if err = rows.Scan(
			&id,
			&requesterName,
			&requesterEmail,
			&retailerID,
			&retailerName,
			&shippingAddress,
			&contactName,
			&contactNumber,
			&deliveryDate,
			&status,
			&createdAt,
		); err != nil {
			return nil, err
		}

		workOrderID, idErr := kernel.WorkOrderIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}

		restoredDate, dateErr := kernel.RestoreDeliveryDate(deliveryDate)
		if dateErr != nil {
			return nil, dateErr
		}

		parsedStatus, statusErr := workorder.ParseStatus(status)
		if statusErr != nil {
			return nil, statusErr
		}

		aggregate, restoreErr := workorder.RestoreWorkOrder(workOrderID, workorder.Details{
			RequesterName:       requesterName,
			RequesterEmail:      requesterEmail,
			RetailerID:          retailerID,
			RetailerName:        retailerName,
			ShippingAddress:     shippingAddress,
			OnSiteContactName:   contactName,
			OnSiteContactNumber: contactNumber,
			DeliveryDate:        restoredDate,
		}, items[id], parsedStatus, createdAt)
		if restoreErr != nil {
			return nil, restoreErr
		}

		aggregates = append(aggregates, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return aggregates, nil
}

func (h ListWorkOrdersQueryHandler) loadItems(ctx context.Context) (map[string][]workorder.LineItem, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			work_order_id,
			name,
			quantity
		FROM work_order_items
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]workorder.LineItem)

	for rows.Next() {
		var (
			workOrderID, name string
			quantity          int
		)

		if err = rows.Scan(&workOrderID, &name, &quantity); err != nil {
			return nil, err
		}

		item, itemErr := workorder.RestoreLineItem(name, quantity)
		if itemErr != nil {
			return nil, itemErr
		}

		items[workOrderID] = append(items[workOrderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func toResponse(aggregate *workorder.WorkOrder) ListWorkOrdersQueryResponse {
	details := aggregate.Details()

	products := make([]ProductResponse, 0, aggregate.ProductCount())
	for _, item := range aggregate.Products() {
		products = append(products, ProductResponse{
			Name:     item.Name(),
			Quantity: item.Quantity(),
		})
	}

	return ListWorkOrdersQueryResponse{
		ID:                  aggregate.ID().String(),
		RequesterName:       details.RequesterName,
		RequesterEmail:      details.RequesterEmail,
		RetailerID:          details.RetailerID,
		RetailerName:        details.RetailerName,
		ShippingAddress:     details.ShippingAddress,
		OnSiteContactName:   details.OnSiteContactName,
		OnSiteContactNumber: details.OnSiteContactNumber,
		DeliveryDate:        details.DeliveryDate.Time(),
		Status:              aggregate.Status().String(),
		Products:            products,
		CreatedAt:           aggregate.CreatedAt(),
	}
}
