package services

import (
	"strings"

	"workorder/internal/core/domain/model/workorder"
)

// StatusFilterAll is the sentinel status value that disables status filtering.
const StatusFilterAll = "all"

// FilterSpec describes one listing filter: an exact status match (or the
// "all" sentinel) ANDed with a case-insensitive retailer name substring.
// The zero value matches everything.
type FilterSpec struct {
	status            string
	retailerSubstring string
}

// NewFilterSpec creates a validated FilterSpec. An empty status is treated
// as the "all" sentinel; any other value must name a valid work order status.
func NewFilterSpec(status, retailerSubstring string) (FilterSpec, error) {
	if status == "" {
		status = StatusFilterAll
	}
	if status != StatusFilterAll {
		if _, err := workorder.ParseStatus(status); err != nil {
			return FilterSpec{}, err
		}
	}

	return FilterSpec{
		status:            status,
		retailerSubstring: retailerSubstring,
	}, nil
}

// Status returns the status predicate, which is either a valid status name
// or the "all" sentinel.
func (f FilterSpec) Status() string {
	if f.status == "" {
		return StatusFilterAll
	}
	return f.status
}

// RetailerSubstring returns the retailer name predicate. Empty means no
// retailer filtering.
func (f FilterSpec) RetailerSubstring() string {
	return f.retailerSubstring
}

// Matches reports whether a single work order satisfies both predicates.
func (f FilterSpec) Matches(wo *workorder.WorkOrder) bool {
	if status := f.Status(); status != StatusFilterAll && wo.Status().String() != status {
		return false
	}
	if f.retailerSubstring != "" {
		retailerName := strings.ToLower(wo.Details().RetailerName)
		if !strings.Contains(retailerName, strings.ToLower(f.retailerSubstring)) {
			return false
		}
	}
	return true
}

// FilterWorkOrders derives the visible rows from the full order collection
// and a filter spec. It is a pure function: the input slice is never
// mutated, relative order is preserved, and the result can be re-derived at
// any time from the store contents. Filtering is idempotent.
func FilterWorkOrders(orders []*workorder.WorkOrder, spec FilterSpec) []*workorder.WorkOrder {
	filtered := make([]*workorder.WorkOrder, 0, len(orders))
	for _, wo := range orders {
		if spec.Matches(wo) {
			filtered = append(filtered, wo)
		}
	}
	return filtered
}
