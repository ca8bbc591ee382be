package memory

import (
	"context"
	"errors"

	"workorder/internal/core/domain/model/retailer"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/core/ports"
)

// ErrNoActiveTransaction is returned when Commit or Rollback is called
// without a preceding Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates in-memory unit of work instances over a shared store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork instance. Each instance stages its own
// copy of the store state, mirroring the isolation of the postgres adapter.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements the transaction contract against the in-memory store.
// Begin snapshots the store; repository writes act on the snapshot; Commit
// swaps the snapshot in atomically. Without an active transaction repository
// operations act on the store directly, matching the postgres adapter's
// behavior outside a transaction.
type UnitOfWork struct {
	store  *Store
	active bool

	orders    []*workorder.WorkOrder
	retailers []*retailer.Retailer
}

// Begin snapshots the current store state. Multiple calls are safe and will
// not re-snapshot.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.RLock()
	uow.orders = append([]*workorder.WorkOrder(nil), uow.store.orders...)
	uow.retailers = append([]*retailer.Retailer(nil), uow.store.retailers...)
	uow.store.mu.RUnlock()

	uow.active = true
	return nil
}

// Commit atomically replaces the store state with the staged snapshot.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.store.mu.Lock()
	uow.store.orders = uow.orders
	uow.store.retailers = uow.retailers
	uow.store.mu.Unlock()

	uow.reset()
	return nil
}

// Rollback discards the staged snapshot, leaving the store untouched.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.reset()
	return nil
}

// WorkOrderRepository returns a repository bound to this unit of work.
func (uow *UnitOfWork) WorkOrderRepository() ports.WorkOrderRepository {
	return &WorkOrderRepository{uow: uow}
}

// RetailerRepository returns a repository bound to this unit of work.
func (uow *UnitOfWork) RetailerRepository() ports.RetailerRepository {
	return &RetailerRepository{uow: uow}
}

func (uow *UnitOfWork) reset() {
	uow.active = false
	uow.orders = nil
	uow.retailers = nil
}
