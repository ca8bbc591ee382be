package memory

import (
	"context"
	"fmt"

	"workorder/internal/core/domain/model/retailer"
	"workorder/internal/pkg/errs"
)

// RetailerRepository implements ports.RetailerRepository against the
// in-memory store. Retailers are immutable after creation, so no cloning is
// needed on reads.
type RetailerRepository struct {
	uow *UnitOfWork
}

// Add appends a new retailer to the registry.
func (r *RetailerRepository) Add(ctx context.Context, aggregate *retailer.Retailer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if !r.uow.active {
		if err := r.uow.Begin(ctx); err != nil {
			return err
		}
		if err := r.add(aggregate); err != nil {
			_ = r.uow.Rollback(ctx)
			return err
		}
		return r.uow.Commit(ctx)
	}

	return r.add(aggregate)
}

func (r *RetailerRepository) add(aggregate *retailer.Retailer) error {
	for _, existing := range r.uow.retailers {
		if existing.IsEqual(aggregate) {
			return errs.NewValueIsInvalidErrorWithCause(
				"retailerId", fmt.Errorf("%s already exists", aggregate.ID()))
		}
	}

	r.uow.retailers = append(r.uow.retailers, aggregate)
	return nil
}

// Get retrieves a retailer by identifier.
func (r *RetailerRepository) Get(_ context.Context, id string) (*retailer.Retailer, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("retailerId")
	}

	for _, existing := range r.snapshot() {
		if existing.ID() == id {
			return existing, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("retailerId", id)
}

// GetAll retrieves every registered retailer in registration order.
func (r *RetailerRepository) GetAll(_ context.Context) ([]*retailer.Retailer, error) {
	return r.snapshot(), nil
}

func (r *RetailerRepository) snapshot() []*retailer.Retailer {
	if r.uow.active {
		return append([]*retailer.Retailer(nil), r.uow.retailers...)
	}

	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()
	return append([]*retailer.Retailer(nil), r.uow.store.retailers...)
}
