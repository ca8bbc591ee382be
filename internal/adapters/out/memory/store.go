// Package memory provides an in-memory implementation of the persistence
// ports. It backs the no-database mode and the wizard tests: the same unit of
// work contract as the postgres adapter, with commits applied atomically to a
// shared store under a lock.
package memory

import (
	"sync"

	"workorder/internal/core/domain/model/retailer"
	"workorder/internal/core/domain/model/workorder"
)

// Store is the shared in-memory state: work orders in insertion order and
// registry retailers in registration order. Safe for concurrent use; all
// reads and writes go through unit of work instances.
type Store struct {
	mu        sync.RWMutex
	orders    []*workorder.WorkOrder
	retailers []*retailer.Retailer
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Seed registers retailers directly, bypassing the unit of work. Used at
// startup to make the sample registry available before the first request.
func (s *Store) Seed(retailers ...*retailer.Retailer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, aggregate := range retailers {
		if err := aggregate.Validate(); err != nil {
			return err
		}
		s.retailers = append(s.retailers, aggregate)
	}
	return nil
}

// SampleRetailers returns the built-in registry entries used by the
// no-database mode.
func SampleRetailers() ([]*retailer.Retailer, error) {
	florida, err := retailer.NewRetailer(
		"retailer-1871-florida", "1871 Florida", "1871 Florida Street", "Memphis", "TN", "38106")
	if err != nil {
		return nil, err
	}

	helena, err := retailer.NewRetailer(
		"retailer-helena-ag", "Helena Ag", "100 Main Street", "Helena", "AR", "72342")
	if err != nil {
		return nil, err
	}

	return []*retailer.Retailer{florida, helena}, nil
}

// cloneWorkOrder returns an independent copy of a work order aggregate so
// uncommitted mutations never leak into or out of the store.
func cloneWorkOrder(aggregate *workorder.WorkOrder) (*workorder.WorkOrder, error) {
	return workorder.RestoreWorkOrder(
		aggregate.ID(),
		aggregate.Details(),
		aggregate.Products(),
		aggregate.Status(),
		aggregate.CreatedAt(),
	)
}
