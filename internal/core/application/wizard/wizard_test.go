package wizard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workorder/internal/adapters/out/memory"
	"workorder/internal/core/application/usecases/commands"
	"workorder/internal/core/application/validation"
	"workorder/internal/core/application/wizard"
	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/core/ports"
	"workorder/internal/pkg/errs"
)

type funcWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f funcWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type funcRetailerUoWFactory func() commands.RetailerUoW

func (f funcRetailerUoWFactory) Create() commands.RetailerUoW {
	return f()
}

// failingCommitUoW wraps a real unit of work and rejects every commit so
// persistence failures can be simulated against an otherwise working store.
type failingCommitUoW struct {
	ports.UnitOfWork
}

func (u failingCommitUoW) Commit(_ context.Context) error {
	return errors.New("storage unavailable")
}

func testCatalog(t *testing.T) workorder.Catalog {
	t.Helper()
	catalog, err := workorder.NewCatalog([]string{
		"Sphaerex - 2x2.5 gal",
		"Priaxor - 2x2.5 gal",
		"Veltyma - 2x1 gal",
	})
	require.NoError(t, err)
	return catalog
}

func newTestStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	retailers, err := memory.SampleRetailers()
	require.NoError(t, err)
	require.NoError(t, store.Seed(retailers...))
	return store
}

// newTestWizard wires a wizard to the in-memory store. writeFactory lets a
// test substitute a failing unit of work for the command handlers while the
// wizard still reads through the real one.
func newTestWizard(t *testing.T, store *memory.Store, writeFactory ports.UnitOfWorkFactory) *wizard.Wizard {
	t.Helper()

	readFactory := memory.NewUnitOfWorkFactory(store)
	if writeFactory == nil {
		writeFactory = readFactory
	}

	catalog := testCatalog(t)
	workOrderUoWs := funcWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return writeFactory.Create()
	})
	retailerUoWs := funcRetailerUoWFactory(func() commands.RetailerUoW {
		return writeFactory.Create()
	})

	return wizard.NewWizard(
		commands.NewCreateWorkOrderCommandHandler(workOrderUoWs, catalog),
		commands.NewUpdateWorkOrderCommandHandler(workOrderUoWs, catalog),
		commands.NewCreateRetailerCommandHandler(retailerUoWs),
		readFactory,
		catalog,
	)
}

func validPhase1Input() validation.Phase1Input {
	return validation.Phase1Input{
		RetailerID:            "retailer-1871-florida",
		RetailerName:          "1871 Florida",
		ShippingAddress:       "1871 Florida Street\nMemphis, TN 38106",
		OnSiteContactName:     "Pat Doyle",
		OnSiteContactNumber:   "+19015550142",
		RequesterName:         "Jordan Smith",
		RequesterEmail:        "jordan.smith@example.com",
		RequestedDeliveryDate: time.Now().AddDate(0, 0, 7).Format(time.DateOnly),
	}
}

func validPhase2Input() validation.Phase2Input {
	return validation.Phase2Input{
		Products: []validation.ProductEntry{
			{Name: "Sphaerex - 2x2.5 gal", Quantity: "2"},
		},
	}
}

func storedWorkOrders(t *testing.T, store *memory.Store) []*workorder.WorkOrder {
	t.Helper()
	orders, err := memory.NewUnitOfWorkFactory(store).Create().
		WorkOrderRepository().GetAll(context.Background())
	require.NoError(t, err)
	return orders
}

func TestWizard_Start(t *testing.T) {
	t.Run("should move an idle wizard to the details phase", func(t *testing.T) {
		w := newTestWizard(t, newTestStore(t), nil)

		err := w.Start()

		assert.NoError(t, err)
		assert.Equal(t, wizard.DetailsPhase, w.State())
		assert.False(t, w.IsEditing())
	})

	t.Run("should fail when a flow is already active", func(t *testing.T) {
		w := newTestWizard(t, newTestStore(t), nil)
		require.NoError(t, w.Start())

		err := w.Start()

		assert.ErrorIs(t, err, wizard.ErrFlowAlreadyActive)
		assert.Equal(t, wizard.DetailsPhase, w.State())
	})
}

func TestWizard_SubmitDetails(t *testing.T) {
	t.Run("should fail outside the details phase", func(t *testing.T) {
		w := newTestWizard(t, newTestStore(t), nil)

		_, err := w.SubmitDetails(validPhase1Input())

		assert.ErrorIs(t, err, wizard.ErrNotInDetailsPhase)
	})

	t.Run("should return field errors and stay in the details phase", func(t *testing.T) {
		w := newTestWizard(t, newTestStore(t), nil)
		require.NoError(t, w.Start())

		input := validPhase1Input()
		input.RetailerID = ""
		input.RequesterEmail = "not-an-email"

		fieldErrors, err := w.SubmitDetails(input)

		require.NoError(t, err)
		assert.True(t, fieldErrors.Has("retailerId"))
		assert.True(t, fieldErrors.Has("requesterEmail"))
		assert.Equal(t, wizard.DetailsPhase, w.State())
	})

	t.Run("should advance to the products phase on valid input", func(t *testing.T) {
		w := newTestWizard(t, newTestStore(t), nil)
		require.NoError(t, w.Start())

		fieldErrors, err := w.SubmitDetails(validPhase1Input())

		require.NoError(t, err)
		assert.Empty(t, fieldErrors)
		assert.Equal(t, wizard.ProductsPhase, w.State())
	})

	t.Run("should not accept details again from the products phase", func(t *testing.T) {
		w := newTestWizard(t, newTestStore(t), nil)
		require.NoError(t, w.Start())
		_, err := w.SubmitDetails(validPhase1Input())
		require.NoError(t, err)

		_, err = w.SubmitDetails(validPhase1Input())

		assert.ErrorIs(t, err, wizard.ErrNotInDetailsPhase)
		assert.Equal(t, wizard.ProductsPhase, w.State())
	})
}

func TestWizard_SubmitProducts(t *testing.T) {
	t.Run("should fail outside the products phase", func(t *testing.T) {
		w := newTestWizard(t, newTestStore(t), nil)
		require.NoError(t, w.Start())

		_, _, err := w.SubmitProducts(context.Background(), validPhase2Input())

		assert.ErrorIs(t, err, wizard.ErrNotInProductsPhase)
	})

	t.Run("should reject an empty product list without touching the store", func(t *testing.T) {
		store := newTestStore(t)
		w := newTestWizard(t, store, nil)
		require.NoError(t, w.Start())
		_, err := w.SubmitDetails(validPhase1Input())
		require.NoError(t, err)

		_, fieldErrors, err := w.SubmitProducts(context.Background(), validation.Phase2Input{})

		require.NoError(t, err)
		assert.True(t, fieldErrors.Has("products"))
		assert.Equal(t, wizard.ProductsPhase, w.State())
		assert.Empty(t, storedWorkOrders(t, store))
	})

	t.Run("should commit a completed draft as a pending work order", func(t *testing.T) {
		store := newTestStore(t)
		w := newTestWizard(t, store, nil)
		require.NoError(t, w.Start())
		_, err := w.SubmitDetails(validPhase1Input())
		require.NoError(t, err)

		id, fieldErrors, err := w.SubmitProducts(context.Background(), validPhase2Input())

		require.NoError(t, err)
		assert.Empty(t, fieldErrors)
		assert.Equal(t, "WO-001", id.String())
		assert.Equal(t, wizard.Idle, w.State())

		orders := storedWorkOrders(t, store)
		require.Len(t, orders, 1)
		assert.Equal(t, workorder.Pending, orders[0].Status())
		assert.Equal(t, "Jordan Smith", orders[0].Details().RequesterName)
		require.Len(t, orders[0].Products(), 1)
		assert.Equal(t, "Sphaerex - 2x2.5 gal", orders[0].Products()[0].Name())
		assert.Equal(t, 2, orders[0].Products()[0].Quantity())
	})

	t.Run("should keep the draft and phase when the commit fails", func(t *testing.T) {
		store := newTestStore(t)
		readFactory := memory.NewUnitOfWorkFactory(store)
		writeFactory := funcUnitOfWorkFactory(func() ports.UnitOfWork {
			return failingCommitUoW{UnitOfWork: readFactory.Create()}
		})
		w := newTestWizard(t, store, writeFactory)
		require.NoError(t, w.Start())
		_, err := w.SubmitDetails(validPhase1Input())
		require.NoError(t, err)

		_, _, err = w.SubmitProducts(context.Background(), validPhase2Input())

		assert.ErrorContains(t, err, "storage unavailable")
		assert.Equal(t, wizard.ProductsPhase, w.State())
		assert.Equal(t, validPhase2Input().Products, w.Draft().Products())
		assert.Empty(t, storedWorkOrders(t, store))
	})
}

func TestWizard_Cancel(t *testing.T) {
	t.Run("should discard the draft from either phase", func(t *testing.T) {
		store := newTestStore(t)
		w := newTestWizard(t, store, nil)
		require.NoError(t, w.Start())
		_, err := w.SubmitDetails(validPhase1Input())
		require.NoError(t, err)

		w.Cancel()

		assert.Equal(t, wizard.Idle, w.State())
		assert.Empty(t, w.Draft().Details().RequesterName)
		assert.Empty(t, storedWorkOrders(t, store))
	})
}

func TestWizard_CreateRetailer(t *testing.T) {
	t.Run("should fail outside the details phase", func(t *testing.T) {
		w := newTestWizard(t, newTestStore(t), nil)

		_, _, err := w.CreateRetailer(context.Background(), validation.NewRetailerInput{})

		assert.ErrorIs(t, err, wizard.ErrNotInDetailsPhase)
	})

	t.Run("should return field errors without registering anything", func(t *testing.T) {
		store := newTestStore(t)
		w := newTestWizard(t, store, nil)
		require.NoError(t, w.Start())

		_, fieldErrors, err := w.CreateRetailer(context.Background(), validation.NewRetailerInput{
			Name:  "Delta Supply",
			State: "Mississippi",
		})

		require.NoError(t, err)
		assert.True(t, fieldErrors.Has("retailerId"))
		assert.True(t, fieldErrors.Has("state"))
		assert.True(t, fieldErrors.Has("street"))

		retailers, repoErr := memory.NewUnitOfWorkFactory(store).Create().
			RetailerRepository().GetAll(context.Background())
		require.NoError(t, repoErr)
		assert.Len(t, retailers, 2)
	})

	t.Run("should register the retailer and auto-select it into the draft", func(t *testing.T) {
		store := newTestStore(t)
		w := newTestWizard(t, store, nil)
		require.NoError(t, w.Start())

		created, fieldErrors, err := w.CreateRetailer(context.Background(), validation.NewRetailerInput{
			RetailerID: "retailer-delta-supply",
			Name:       "Delta Supply",
			Street:     "410 Levee Road",
			City:       "Clarksdale",
			State:      "MS",
			ZipCode:    "38614",
		})

		require.NoError(t, err)
		assert.Empty(t, fieldErrors)
		require.NotNil(t, created)
		assert.Equal(t, "retailer-delta-supply", created.ID())

		draft := w.Draft().Details()
		assert.Equal(t, "retailer-delta-supply", draft.RetailerID)
		assert.Equal(t, "Delta Supply", draft.RetailerName)
		assert.Equal(t, "410 Levee Road\nClarksdale, MS 38614", draft.ShippingAddress)

		stored, repoErr := memory.NewUnitOfWorkFactory(store).Create().
			RetailerRepository().Get(context.Background(), created.ID())
		require.NoError(t, repoErr)
		assert.Equal(t, "Delta Supply", stored.Name())
	})
}

func TestWizard_EditFlow(t *testing.T) {
	createOrder := func(t *testing.T, w *wizard.Wizard) kernel.WorkOrderID {
		t.Helper()
		require.NoError(t, w.Start())
		_, err := w.SubmitDetails(validPhase1Input())
		require.NoError(t, err)
		id, fieldErrors, err := w.SubmitProducts(context.Background(), validPhase2Input())
		require.NoError(t, err)
		require.Empty(t, fieldErrors)
		return id
	}

	t.Run("should fail for an unknown work order and stay idle", func(t *testing.T) {
		w := newTestWizard(t, newTestStore(t), nil)
		id, err := kernel.NewWorkOrderID(99)
		require.NoError(t, err)

		err = w.StartEdit(context.Background(), id)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, wizard.Idle, w.State())
	})

	t.Run("should prefill the draft from the stored order", func(t *testing.T) {
		store := newTestStore(t)
		w := newTestWizard(t, store, nil)
		id := createOrder(t, w)

		err := w.StartEdit(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, wizard.DetailsPhase, w.State())
		assert.True(t, w.IsEditing())

		draft := w.Draft()
		assert.Equal(t, "Jordan Smith", draft.Details().RequesterName)
		assert.Equal(t, "1871 Florida", draft.Details().RetailerName)
		require.Len(t, draft.Products(), 1)
		assert.Equal(t, "Sphaerex - 2x2.5 gal", draft.Products()[0].Name)
		assert.Equal(t, "2", draft.Products()[0].Quantity)
	})

	t.Run("should commit edits without changing id, status or creation time", func(t *testing.T) {
		store := newTestStore(t)
		w := newTestWizard(t, store, nil)
		id := createOrder(t, w)

		original := storedWorkOrders(t, store)[0]
		require.NoError(t, w.StartEdit(context.Background(), id))

		details := validPhase1Input()
		details.RequesterName = "Morgan Vale"
		_, err := w.SubmitDetails(details)
		require.NoError(t, err)

		editedID, fieldErrors, err := w.SubmitProducts(context.Background(), validation.Phase2Input{
			Products: []validation.ProductEntry{
				{Name: "Veltyma - 2x1 gal", Quantity: "3"},
			},
		})

		require.NoError(t, err)
		assert.Empty(t, fieldErrors)
		assert.True(t, id.IsEqual(editedID))
		assert.Equal(t, wizard.Idle, w.State())

		orders := storedWorkOrders(t, store)
		require.Len(t, orders, 1)
		assert.True(t, id.IsEqual(orders[0].ID()))
		assert.Equal(t, original.Status(), orders[0].Status())
		assert.Equal(t, original.CreatedAt(), orders[0].CreatedAt())
		assert.Equal(t, "Morgan Vale", orders[0].Details().RequesterName)
		require.Len(t, orders[0].Products(), 1)
		assert.Equal(t, "Veltyma - 2x1 gal", orders[0].Products()[0].Name())
	})

	t.Run("should reset to idle when the order is gone at commit time", func(t *testing.T) {
		// The wizard reads from a store that has the order; the handlers
		// write through an empty one, so the update commit hits not-found.
		seeded := newTestStore(t)
		seededWizard := newTestWizard(t, seeded, nil)
		id := createOrder(t, seededWizard)

		w := newTestWizard(t, seeded, memory.NewUnitOfWorkFactory(newTestStore(t)))
		require.NoError(t, w.StartEdit(context.Background(), id))
		_, err := w.SubmitDetails(validPhase1Input())
		require.NoError(t, err)

		_, _, err = w.SubmitProducts(context.Background(), validPhase2Input())

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, wizard.Idle, w.State())
	})
}

type funcUnitOfWorkFactory func() ports.UnitOfWork

func (f funcUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f()
}
