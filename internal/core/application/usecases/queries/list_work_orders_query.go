package queries

import (
	"errors"
	"time"

	"workorder/internal/core/domain/services"
	"workorder/internal/pkg/guard"
)

var ErrListWorkOrdersQueryIsNotConstructed = errors.New(
	"ListWorkOrdersQuery must be created via NewListWorkOrdersQuery constructor",
)

// ListWorkOrdersQuery retrieves the dashboard view of the store: every work
// order newest-first, narrowed by an optional status filter and an optional
// case-insensitive retailer name substring. The two predicates are ANDed.
//
// Example:
//
//	query, err := NewListWorkOrdersQuery("Pending", "acme")
//	if err != nil {
//	    return fmt.Errorf("invalid filter: %w", err)
//	}
//
//	handler := NewListWorkOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type ListWorkOrdersQuery struct {
	filter services.FilterSpec

	guard guard.ConstructorGuard
}

// NewListWorkOrdersQuery creates a query over the work order store.
// An empty status means "all"; any other value must name a valid status.
// An empty retailer substring disables retailer filtering.
func NewListWorkOrdersQuery(status, retailerSubstring string) (ListWorkOrdersQuery, error) {
	filter, err := services.NewFilterSpec(status, retailerSubstring)
	if err != nil {
		return ListWorkOrdersQuery{}, err
	}

	return ListWorkOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListWorkOrdersQueryIsNotConstructed if validation fails.
func (q ListWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListWorkOrdersQueryIsNotConstructed)
}

// Filter returns the listing filter spec.
func (q ListWorkOrdersQuery) Filter() services.FilterSpec {
	return q.filter
}

// ProductResponse is one line item of a listed work order.
type ProductResponse struct {
	Name     string
	Quantity int
}

// ListWorkOrdersQueryResponse is the dashboard row for one work order:
// identifier, requester, retailer snapshot, delivery window, lifecycle
// status, and the ordered products.
type ListWorkOrdersQueryResponse struct {
	ID                  string
	RequesterName       string
	RequesterEmail      string
	RetailerID          string
	RetailerName        string
	ShippingAddress     string
	OnSiteContactName   string
	OnSiteContactNumber string
	DeliveryDate        time.Time
	Status              string
	Products            []ProductResponse
	CreatedAt           time.Time
}

// ProductCount returns the number of distinct products on the order.
func (r ListWorkOrdersQueryResponse) ProductCount() int {
	return len(r.Products)
}
