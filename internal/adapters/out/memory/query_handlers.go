package memory

import (
	"context"
	"sort"
	"strings"

	"workorder/internal/core/application/usecases/queries"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/core/domain/services"
)

// ListWorkOrdersQueryHandler is the in-memory counterpart of the SQL-backed
// listing handler: it reads the full store newest-first and applies the same
// pure filter service, so both storage modes answer the query identically.
type ListWorkOrdersQueryHandler struct {
	store *Store
}

// NewListWorkOrdersQueryHandler creates a listing handler over the store.
func NewListWorkOrdersQueryHandler(store *Store) ListWorkOrdersQueryHandler {
	return ListWorkOrdersQueryHandler{store: store}
}

// Handle returns the filtered work orders newest-first.
func (h ListWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query queries.ListWorkOrdersQuery,
) ([]queries.ListWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := NewUnitOfWorkFactory(h.store).Create().WorkOrderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := services.FilterWorkOrders(orders, query.Filter())

	responses := make([]queries.ListWorkOrdersQueryResponse, 0, len(filtered))
	for _, order := range filtered {
		responses = append(responses, toListResponse(order))
	}
	return responses, nil
}

func toListResponse(order *workorder.WorkOrder) queries.ListWorkOrdersQueryResponse {
	details := order.Details()

	products := make([]queries.ProductResponse, 0, order.ProductCount())
	for _, item := range order.Products() {
		products = append(products, queries.ProductResponse{
			Name:     item.Name(),
			Quantity: item.Quantity(),
		})
	}

	return queries.ListWorkOrdersQueryResponse{
		ID:                  order.ID().String(),
		RequesterName:       details.RequesterName,
		RequesterEmail:      details.RequesterEmail,
		RetailerID:          details.RetailerID,
		RetailerName:        details.RetailerName,
		ShippingAddress:     details.ShippingAddress,
		OnSiteContactName:   details.OnSiteContactName,
		OnSiteContactNumber: details.OnSiteContactNumber,
		DeliveryDate:        details.DeliveryDate.Time(),
		Status:              order.Status().String(),
		Products:            products,
		CreatedAt:           order.CreatedAt(),
	}
}

// SearchRetailersQueryHandler answers registry searches from the store with
// the same semantics as the SQL-backed handler: case-insensitive name
// substring, results sorted by name.
type SearchRetailersQueryHandler struct {
	store *Store
}

// NewSearchRetailersQueryHandler creates a search handler over the store.
func NewSearchRetailersQueryHandler(store *Store) SearchRetailersQueryHandler {
	return SearchRetailersQueryHandler{store: store}
}

// Handle returns the matching retailers sorted by name.
func (h SearchRetailersQueryHandler) Handle(
	ctx context.Context,
	query queries.SearchRetailersQuery,
) ([]queries.SearchRetailersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	retailers, err := NewUnitOfWorkFactory(h.store).Create().RetailerRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(query.Term())
	responses := make([]queries.SearchRetailersQueryResponse, 0, len(retailers))
	for _, entry := range retailers {
		if term != "" && !strings.Contains(strings.ToLower(entry.Name()), term) {
			continue
		}
		responses = append(responses, queries.SearchRetailersQueryResponse{
			ID:      entry.ID(),
			Name:    entry.Name(),
			Street:  entry.Street(),
			City:    entry.City(),
			State:   entry.State(),
			ZipCode: entry.ZipCode(),
		})
	}

	sort.Slice(responses, func(i, j int) bool {
		return responses[i].Name < responses[j].Name
	})
	return responses, nil
}
