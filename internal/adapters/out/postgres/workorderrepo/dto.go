// Package workorderrepo provides data transfer objects and mapping functions for
// work order persistence. This package implements the repository pattern for the
// work order domain aggregate, handling the conversion between domain entities
// and database representations.
package workorderrepo

import (
	"time"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"
)

// WorkOrderDTO represents the database structure for persisting work order
// aggregates. Line items live in an owned child table so the product list can
// be replaced atomically on edit.
type WorkOrderDTO struct {
	ID string `gorm:"type:text;primaryKey"`
	// Sequence is the numeric part of the WO-NNN id. Listing tie-breaks on
	// it because the text id sorts WO-1000 before WO-999.
	Sequence            int `gorm:"uniqueIndex"`
	RequesterName       string
	RequesterEmail      string
	RetailerID          string `gorm:"type:text;index"`
	RetailerName        string
	ShippingAddress     string
	OnSiteContactName   string
	OnSiteContactNumber string
	DeliveryDate        time.Time
	Status              string        `gorm:"index"`
	CreatedAt           time.Time     `gorm:"index"`
	Items               []LineItemDTO `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for work order entities.
// Overrides GORM's default naming convention to use "work_orders".
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// LineItemDTO represents one product row of a work order. Insertion order is
// preserved through the surrogate key.
type LineItemDTO struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	WorkOrderID string `gorm:"type:text;index"`
	Name        string
	Quantity    int
}

// TableName specifies the database table name for line item entities.
func (LineItemDTO) TableName() string {
	return "work_order_items"
}

// fromDomain converts a work order domain aggregate to its database representation.
func fromDomain(aggregate *workorder.WorkOrder) WorkOrderDTO {
	details := aggregate.Details()

	items := make([]LineItemDTO, 0, aggregate.ProductCount())
	for _, item := range aggregate.Products() {
		items = append(items, LineItemDTO{
			WorkOrderID: aggregate.ID().String(),
			Name:        item.Name(),
			Quantity:    item.Quantity(),
		})
	}

	return WorkOrderDTO{
		ID:                  aggregate.ID().String(),
		Sequence:            aggregate.ID().Sequence(),
		RequesterName:       details.RequesterName,
		RequesterEmail:      details.RequesterEmail,
		RetailerID:          details.RetailerID,
		RetailerName:        details.RetailerName,
		ShippingAddress:     details.ShippingAddress,
		OnSiteContactName:   details.OnSiteContactName,
		OnSiteContactNumber: details.OnSiteContactNumber,
		DeliveryDate:        details.DeliveryDate.Time(),
		Status:              aggregate.Status().String(),
		CreatedAt:           aggregate.CreatedAt(),
		Items:               items,
	}
}

// toDomain converts a database DTO to a work order domain aggregate.
// Reconstructs the complete aggregate including status using RestoreWorkOrder,
// so stored orders bypass the entry-time delivery date window check.
func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.WorkOrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	deliveryDate, err := kernel.RestoreDeliveryDate(dto.DeliveryDate)
	if err != nil {
		return nil, err
	}

	status, err := workorder.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	products := make([]workorder.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		lineItem, itemErr := workorder.RestoreLineItem(item.Name, item.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		products = append(products, lineItem)
	}

	return workorder.RestoreWorkOrder(id, workorder.Details{
		RequesterName:       dto.RequesterName,
		RequesterEmail:      dto.RequesterEmail,
		RetailerID:          dto.RetailerID,
		RetailerName:        dto.RetailerName,
		ShippingAddress:     dto.ShippingAddress,
		OnSiteContactName:   dto.OnSiteContactName,
		OnSiteContactNumber: dto.OnSiteContactNumber,
		DeliveryDate:        deliveryDate,
	}, products, status, dto.CreatedAt)
}
