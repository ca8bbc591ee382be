package workorder_test

import (
	"testing"
	"time"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails(t *testing.T) workorder.Details {
	t.Helper()
	now := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)
	date, err := kernel.NewDeliveryDate(now.AddDate(0, 0, 14), now)
	require.NoError(t, err)

	return workorder.Details{
		RequesterName:       "Test Trial Dev",
		RequesterEmail:      "testtrialmanager@farm.ag",
		RetailerID:          "1",
		RetailerName:        "1871 Florida",
		ShippingAddress:     "1871 Florida Street\nMemphis, TN 38106",
		OnSiteContactName:   "John Doe",
		OnSiteContactNumber: "+19015550134",
		DeliveryDate:        date,
	}
}

func validProducts(t *testing.T) []workorder.LineItem {
	t.Helper()
	item, err := workorder.NewLineItem("Veltyma - 2x1 gal", 2, testCatalog(t))
	require.NoError(t, err)
	return []workorder.LineItem{item}
}

func TestNewWorkOrder(t *testing.T) {
	id, _ := kernel.NewWorkOrderID(1)
	createdAt := time.Date(2026, time.April, 1, 9, 30, 0, 0, time.UTC)

	t.Run("should create valid pending work order", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(id, validDetails(t), validProducts(t), createdAt)

		require.NoError(t, err)
		require.NoError(t, wo.Validate())
		assert.Equal(t, "WO-001", wo.ID().String())
		assert.Equal(t, workorder.Pending, wo.Status())
		assert.Equal(t, createdAt, wo.CreatedAt())
		assert.Equal(t, 1, wo.ProductCount())
	})

	t.Run("should fail with zero value id", func(t *testing.T) {
		var invalidID kernel.WorkOrderID

		wo, err := workorder.NewWorkOrder(invalidID, validDetails(t), validProducts(t), createdAt)

		require.Error(t, err)
		assert.Nil(t, wo)
	})

	t.Run("should fail with empty products", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(id, validDetails(t), nil, createdAt)

		require.Error(t, err)
		assert.Nil(t, wo)
		assert.Contains(t, err.Error(), "products")
	})

	t.Run("should fail with short requester name", func(t *testing.T) {
		details := validDetails(t)
		details.RequesterName = "A"

		_, err := workorder.NewWorkOrder(id, details, validProducts(t), createdAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "requesterName")
	})

	t.Run("should fail with malformed email", func(t *testing.T) {
		details := validDetails(t)
		details.RequesterEmail = "not-an-email"

		_, err := workorder.NewWorkOrder(id, details, validProducts(t), createdAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "requesterEmail")
	})

	t.Run("should fail with empty retailer id", func(t *testing.T) {
		details := validDetails(t)
		details.RetailerID = ""

		_, err := workorder.NewWorkOrder(id, details, validProducts(t), createdAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "retailerId")
	})

	t.Run("should fail with short shipping address", func(t *testing.T) {
		details := validDetails(t)
		details.ShippingAddress = "short"

		_, err := workorder.NewWorkOrder(id, details, validProducts(t), createdAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "shippingAddress")
	})

	t.Run("should fail with invalid phone number", func(t *testing.T) {
		details := validDetails(t)
		details.OnSiteContactNumber = "0123"

		_, err := workorder.NewWorkOrder(id, details, validProducts(t), createdAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "onSiteContactNumber")
	})

	t.Run("should fail with unconstructed delivery date", func(t *testing.T) {
		details := validDetails(t)
		details.DeliveryDate = kernel.DeliveryDate{}

		_, err := workorder.NewWorkOrder(id, details, validProducts(t), createdAt)

		require.Error(t, err)
	})

	t.Run("should fail with zero created time", func(t *testing.T) {
		_, err := workorder.NewWorkOrder(id, validDetails(t), validProducts(t), time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "createdAt")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		details := validDetails(t)
		details.RequesterName = ""
		details.RetailerID = ""

		_, err := workorder.NewWorkOrder(id, details, nil, createdAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "requesterName")
		assert.Contains(t, err.Error(), "retailerId")
		assert.Contains(t, err.Error(), "products")
	})
}

func TestRestoreWorkOrder(t *testing.T) {
	id, _ := kernel.NewWorkOrderID(5)
	createdAt := time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should restore with arbitrary status", func(t *testing.T) {
		wo, err := workorder.RestoreWorkOrder(id, validDetails(t), validProducts(t), workorder.Processing, createdAt)

		require.NoError(t, err)
		assert.Equal(t, workorder.Processing, wo.Status())
		assert.Equal(t, createdAt, wo.CreatedAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := workorder.RestoreWorkOrder(id, validDetails(t), validProducts(t), workorder.Unknown, createdAt)

		require.Error(t, err)
	})
}

func TestWorkOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil work order", func(t *testing.T) {
		var wo *workorder.WorkOrder

		err := wo.Validate()

		require.Error(t, err)
		assert.Equal(t, workorder.ErrWorkOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value work order", func(t *testing.T) {
		var wo workorder.WorkOrder

		err := wo.Validate()

		require.Error(t, err)
	})
}

func TestWorkOrder_ApplyEdit(t *testing.T) {
	id, _ := kernel.NewWorkOrderID(3)
	createdAt := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)

	t.Run("should replace details and products, preserving id, createdAt, status", func(t *testing.T) {
		wo, err := workorder.RestoreWorkOrder(id, validDetails(t), validProducts(t), workorder.Processing, createdAt)
		require.NoError(t, err)

		newDetails := validDetails(t)
		newDetails.RetailerName = "Helena Ag"
		newDetails.RetailerID = "2"
		item, err := workorder.NewLineItem("Sphaerex - 2x2.5 gal", 4, testCatalog(t))
		require.NoError(t, err)

		require.NoError(t, wo.ApplyEdit(newDetails, []workorder.LineItem{item}))

		assert.Equal(t, "WO-003", wo.ID().String())
		assert.Equal(t, createdAt, wo.CreatedAt())
		assert.Equal(t, workorder.Processing, wo.Status())
		assert.Equal(t, "Helena Ag", wo.Details().RetailerName)
		assert.Equal(t, "Sphaerex - 2x2.5 gal", wo.Products()[0].Name())
	})

	t.Run("should reject empty products and keep previous state", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(id, validDetails(t), validProducts(t), createdAt)
		require.NoError(t, err)

		err = wo.ApplyEdit(validDetails(t), nil)

		require.Error(t, err)
		assert.Equal(t, 1, wo.ProductCount())
	})

	t.Run("should reject invalid details and keep previous state", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(id, validDetails(t), validProducts(t), createdAt)
		require.NoError(t, err)

		bad := validDetails(t)
		bad.RequesterEmail = "nope"

		err = wo.ApplyEdit(bad, validProducts(t))

		require.Error(t, err)
		assert.Equal(t, "testtrialmanager@farm.ag", wo.Details().RequesterEmail)
	})
}

func TestWorkOrder_Advance(t *testing.T) {
	id, _ := kernel.NewWorkOrderID(9)
	createdAt := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)

	t.Run("should walk the full lifecycle", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(id, validDetails(t), validProducts(t), createdAt)
		require.NoError(t, err)

		require.NoError(t, wo.Advance())
		assert.Equal(t, workorder.Processing, wo.Status())

		require.NoError(t, wo.Advance())
		assert.Equal(t, workorder.Completed, wo.Status())

		require.Error(t, wo.Advance())
		assert.Equal(t, workorder.Completed, wo.Status())
	})
}

func TestWorkOrder_Products(t *testing.T) {
	t.Run("returned slice is a copy", func(t *testing.T) {
		id, _ := kernel.NewWorkOrderID(2)
		createdAt := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
		wo, err := workorder.NewWorkOrder(id, validDetails(t), validProducts(t), createdAt)
		require.NoError(t, err)

		products := wo.Products()
		products[0] = workorder.LineItem{}

		assert.Equal(t, "Veltyma - 2x1 gal", wo.Products()[0].Name())
	})
}
