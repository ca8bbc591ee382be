package memory

import (
	"context"
	"fmt"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/pkg/errs"
)

// WorkOrderRepository implements ports.WorkOrderRepository against the
// in-memory store. Aggregates are cloned on the way in and on the way out so
// callers can never mutate stored state without a commit.
type WorkOrderRepository struct {
	uow *UnitOfWork
}

// Add appends a new work order. Fails if the identifier is already taken.
func (r *WorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	clone, err := cloneWorkOrder(aggregate)
	if err != nil {
		return err
	}

	if !r.uow.active {
		if err := r.uow.Begin(ctx); err != nil {
			return err
		}
		if err := r.add(clone); err != nil {
			_ = r.uow.Rollback(ctx)
			return err
		}
		return r.uow.Commit(ctx)
	}

	return r.add(clone)
}

func (r *WorkOrderRepository) add(clone *workorder.WorkOrder) error {
	for _, existing := range r.uow.orders {
		if existing.IsEqual(clone) {
			return errs.NewValueIsInvalidErrorWithCause(
				"workOrderId", fmt.Errorf("%s already exists", clone.ID()))
		}
	}

	r.uow.orders = append(r.uow.orders, clone)
	return nil
}

// Update replaces a stored work order in place.
func (r *WorkOrderRepository) Update(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	clone, err := cloneWorkOrder(aggregate)
	if err != nil {
		return err
	}

	if !r.uow.active {
		if err := r.uow.Begin(ctx); err != nil {
			return err
		}
		if err := r.update(clone); err != nil {
			_ = r.uow.Rollback(ctx)
			return err
		}
		return r.uow.Commit(ctx)
	}

	return r.update(clone)
}

func (r *WorkOrderRepository) update(clone *workorder.WorkOrder) error {
	for i, existing := range r.uow.orders {
		if existing.IsEqual(clone) {
			r.uow.orders[i] = clone
			return nil
		}
	}
	return errs.NewObjectNotFoundError("workOrderId", clone.ID().String())
}

// Get retrieves a work order by identifier.
func (r *WorkOrderRepository) Get(_ context.Context, id kernel.WorkOrderID) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, existing := range r.snapshot() {
		if existing.ID().IsEqual(id) {
			return cloneWorkOrder(existing)
		}
	}

	return nil, errs.NewObjectNotFoundError("workOrderId", id.String())
}

// GetAll retrieves every work order newest-first.
func (r *WorkOrderRepository) GetAll(_ context.Context) ([]*workorder.WorkOrder, error) {
	stored := r.snapshot()

	orders := make([]*workorder.WorkOrder, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		clone, err := cloneWorkOrder(stored[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, clone)
	}

	return orders, nil
}

// Count returns the number of stored work orders.
func (r *WorkOrderRepository) Count(_ context.Context) (int, error) {
	return len(r.snapshot()), nil
}

func (r *WorkOrderRepository) snapshot() []*workorder.WorkOrder {
	if r.uow.active {
		return r.uow.orders
	}

	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()
	return append([]*workorder.WorkOrder(nil), r.uow.store.orders...)
}
