package ports

import (
	"context"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work order
// aggregates. The store only ever sees fully validated, fully committed
// orders; partially entered drafts never reach it.
type WorkOrderRepository interface {
	// Add persists a new work order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work order aggregate.
	// Returns an error if the order does not exist.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get retrieves a work order by its WO-NNN identifier.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.WorkOrderID) (*workorder.WorkOrder, error)

	// GetAll retrieves every work order in reverse-chronological insertion
	// order (newest first), the order the dashboard lists them in.
	GetAll(ctx context.Context) ([]*workorder.WorkOrder, error)

	// Count returns the number of stored work orders. Used to assign the
	// next sequential WO-NNN identifier.
	Count(ctx context.Context) (int, error)
}
