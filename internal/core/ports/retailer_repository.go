package ports

import (
	"context"

	"workorder/internal/core/domain/model/retailer"
)

// RetailerRepository defines the persistence contract for the retailer
// registry.
type RetailerRepository interface {
	// Add persists a new retailer to the registry.
	Add(ctx context.Context, aggregate *retailer.Retailer) error

	// Get retrieves a retailer by identifier.
	// Returns errs.ObjectNotFoundError if no such retailer exists.
	Get(ctx context.Context, id string) (*retailer.Retailer, error)

	// GetAll retrieves every registered retailer.
	GetAll(ctx context.Context) ([]*retailer.Retailer, error)
}
