// Package retailerrepo provides data transfer objects and mapping functions for
// retailer persistence.
package retailerrepo

import (
	"workorder/internal/core/domain/model/retailer"
)

// RetailerDTO represents the database structure for persisting retailers.
// Retailers are immutable after creation, so there is no update path.
type RetailerDTO struct {
	ID      string `gorm:"type:text;primaryKey"`
	Name    string `gorm:"index"`
	Street  string
	City    string
	State   string
	ZipCode string
}

// TableName specifies the database table name for retailer entities.
func (RetailerDTO) TableName() string {
	return "retailers"
}

// fromDomain converts a retailer domain aggregate to its database representation.
func fromDomain(aggregate *retailer.Retailer) RetailerDTO {
	return RetailerDTO{
		ID:      aggregate.ID(),
		Name:    aggregate.Name(),
		Street:  aggregate.Street(),
		City:    aggregate.City(),
		State:   aggregate.State(),
		ZipCode: aggregate.ZipCode(),
	}
}

// toDomain converts a database DTO to a retailer domain aggregate. Retailers
// pass the same validation on the way out as on the way in.
func toDomain(dto RetailerDTO) (*retailer.Retailer, error) {
	return retailer.NewRetailer(dto.ID, dto.Name, dto.Street, dto.City, dto.State, dto.ZipCode)
}
