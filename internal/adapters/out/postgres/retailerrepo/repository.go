package retailerrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workorder/internal/core/domain/model/retailer"
	"workorder/internal/pkg/errs"
)

// GormRetailerRepository implements RetailerRepository using GORM.
type GormRetailerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormRetailerRepository creates a new GORM retailer repository.
func NewGormRetailerRepository(db *gorm.DB, tracker aggregateTracker) *GormRetailerRepository {
	return &GormRetailerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new retailer to the database.
func (r *GormRetailerRepository) Add(ctx context.Context, aggregate *retailer.Retailer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a retailer by ID.
func (r *GormRetailerRepository) Get(ctx context.Context, id string) (*retailer.Retailer, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("retailerId")
	}

	var dto RetailerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("retailerId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered retailer sorted by name.
func (r *GormRetailerRepository) GetAll(ctx context.Context) ([]*retailer.Retailer, error) {
	var dtos []RetailerDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	retailers := make([]*retailer.Retailer, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		retailers = append(retailers, aggregate)
	}

	return retailers, nil
}
