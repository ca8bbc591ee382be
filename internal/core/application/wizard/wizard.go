// Package wizard implements the two-phase work order intake flow: a logistics
// phase, a products phase, and an inline retailer creation subflow. The
// wizard is the only way work orders are created or edited; it validates with
// the declarative schemas and commits through the command handlers, so no
// partially entered draft ever reaches the store.
package wizard

import (
	"context"
	"errors"
	"strconv"
	"time"

	"workorder/internal/core/application/usecases/commands"
	"workorder/internal/core/application/validation"
	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/retailer"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/core/ports"
	"workorder/internal/pkg/errs"
)

// State is the wizard's position in the intake flow.
type State int

const (
	// Idle means no wizard flow is active and no draft exists.
	Idle State = iota

	// DetailsPhase is the first phase: logistics and requester fields.
	DetailsPhase

	// ProductsPhase is the second phase: the product list. There is no back
	// edge to DetailsPhase; leaving this phase means commit or cancel.
	ProductsPhase
)

var (
	// ErrNotInDetailsPhase is returned when a details-phase operation is
	// attempted from any other state.
	ErrNotInDetailsPhase = errors.New("wizard is not in the details phase")

	// ErrNotInProductsPhase is returned when a products-phase operation is
	// attempted from any other state.
	ErrNotInProductsPhase = errors.New("wizard is not in the products phase")

	// ErrFlowAlreadyActive is returned when Start is called while a draft
	// exists. The active draft must be committed or cancelled first.
	ErrFlowAlreadyActive = errors.New("a wizard flow is already active")
)

// Draft is the working copy of a not yet committed work order. It lives only
// inside the wizard; committing writes it to the store and discards it,
// cancelling just discards it.
type Draft struct {
	details  validation.Phase1Input
	record   validation.Phase1Record
	products []validation.ProductEntry
}

// Details returns the raw first-phase fields for form prefill.
func (d Draft) Details() validation.Phase1Input {
	return d.details
}

// Products returns the raw product rows for form prefill.
func (d Draft) Products() []validation.ProductEntry {
	return append([]validation.ProductEntry(nil), d.products...)
}

// Wizard drives one intake flow for one user session. It is not safe for
// concurrent use; the session Manager serializes access.
type Wizard struct {
	state   State
	draft   Draft
	editing *kernel.WorkOrderID

	createOrder    commands.CreateWorkOrderCommandHandler
	updateOrder    commands.UpdateWorkOrderCommandHandler
	createRetailer commands.CreateRetailerCommandHandler
	uowFactory     ports.UnitOfWorkFactory
	catalog        workorder.Catalog
}

// NewWizard creates an idle wizard wired to the given command handlers.
// The unit of work factory is used for read access when an edit flow loads
// the existing order.
func NewWizard(
	createOrder commands.CreateWorkOrderCommandHandler,
	updateOrder commands.UpdateWorkOrderCommandHandler,
	createRetailer commands.CreateRetailerCommandHandler,
	uowFactory ports.UnitOfWorkFactory,
	catalog workorder.Catalog,
) *Wizard {
	return &Wizard{
		createOrder:    createOrder,
		updateOrder:    updateOrder,
		createRetailer: createRetailer,
		uowFactory:     uowFactory,
		catalog:        catalog,
	}
}

// State returns the wizard's current state.
func (w *Wizard) State() State {
	return w.state
}

// Draft returns the current working draft.
func (w *Wizard) Draft() Draft {
	return w.draft
}

// IsEditing reports whether the active flow edits an existing order.
func (w *Wizard) IsEditing() bool {
	return w.editing != nil
}

// Start begins a create-mode flow with an empty draft.
func (w *Wizard) Start() error {
	if w.state != Idle {
		return ErrFlowAlreadyActive
	}

	w.draft = Draft{}
	w.editing = nil
	w.state = DetailsPhase
	return nil
}

// StartEdit begins an edit-mode flow, pre-populating the draft from the
// stored order. Returns errs.ObjectNotFoundError and stays Idle if the order
// does not exist.
func (w *Wizard) StartEdit(ctx context.Context, id kernel.WorkOrderID) error {
	if w.state != Idle {
		return ErrFlowAlreadyActive
	}

	existing, err := w.uowFactory.Create().WorkOrderRepository().Get(ctx, id)
	if err != nil {
		return err
	}

	details := existing.Details()
	products := make([]validation.ProductEntry, 0, existing.ProductCount())
	for _, item := range existing.Products() {
		products = append(products, validation.ProductEntry{
			Name:     item.Name(),
			Quantity: strconv.Itoa(item.Quantity()),
		})
	}

	w.draft = Draft{
		details: validation.Phase1Input{
			RetailerID:            details.RetailerID,
			RetailerName:          details.RetailerName,
			ShippingAddress:       details.ShippingAddress,
			OnSiteContactName:     details.OnSiteContactName,
			OnSiteContactNumber:   details.OnSiteContactNumber,
			RequesterName:         details.RequesterName,
			RequesterEmail:        details.RequesterEmail,
			RequestedDeliveryDate: details.DeliveryDate.String(),
		},
		products: products,
	}
	w.editing = &id
	w.state = DetailsPhase
	return nil
}

// SubmitDetails validates the first-phase fields and, if they pass, merges
// them into the draft and moves to the products phase. Field errors leave
// the wizard in the details phase with the draft untouched.
func (w *Wizard) SubmitDetails(input validation.Phase1Input) (validation.FieldErrors, error) {
	if w.state != DetailsPhase {
		return nil, ErrNotInDetailsPhase
	}

	record, fieldErrors := validation.ValidatePhase1(input, time.Now())
	if len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	w.draft.details = input
	w.draft.record = record
	w.state = ProductsPhase
	return nil, nil
}

// SubmitProducts validates the product list and, if it passes, commits the
// completed draft through the appropriate command handler.
//
// On success the draft is cleared and the wizard returns to Idle; the
// returned identifier is the created or edited order's WO-NNN id. A
// persistence failure keeps the wizard in the products phase with the draft
// intact so the submit can be retried. If an edit flow finds the order gone
// at commit time, the not-found error is surfaced and the wizard resets to
// Idle.
func (w *Wizard) SubmitProducts(
	ctx context.Context,
	input validation.Phase2Input,
) (kernel.WorkOrderID, validation.FieldErrors, error) {
	if w.state != ProductsPhase {
		return kernel.WorkOrderID{}, nil, ErrNotInProductsPhase
	}

	record, fieldErrors := validation.ValidatePhase2(input, w.catalog)
	if len(fieldErrors) > 0 {
		return kernel.WorkOrderID{}, fieldErrors, nil
	}

	w.draft.products = input.Products

	id, err := w.commit(ctx, record)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			w.reset()
		}
		return kernel.WorkOrderID{}, nil, err
	}

	w.reset()
	return id, nil, nil
}

// Cancel discards the draft and returns to Idle from any state.
func (w *Wizard) Cancel() {
	w.reset()
}

// CreateRetailer runs the inline retailer creation subflow. On success the
// new retailer is registered, auto-selected into the draft, and its address
// components are synthesized into the shipping address field.
func (w *Wizard) CreateRetailer(
	ctx context.Context,
	input validation.NewRetailerInput,
) (*retailer.Retailer, validation.FieldErrors, error) {
	if w.state != DetailsPhase {
		return nil, nil, ErrNotInDetailsPhase
	}

	record, fieldErrors := validation.ValidateNewRetailer(input)
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	cmd, err := commands.NewCreateRetailerCommand(
		record.RetailerID, record.Name, record.Street, record.City, record.State, record.ZipCode)
	if err != nil {
		return nil, nil, err
	}

	created, err := w.createRetailer.Handle(ctx, cmd)
	if err != nil {
		return nil, nil, err
	}

	w.draft.details.RetailerID = created.ID()
	w.draft.details.RetailerName = created.Name()
	w.draft.details.ShippingAddress = created.ShippingAddress()
	return created, nil, nil
}

func (w *Wizard) commit(ctx context.Context, record validation.Phase2Record) (kernel.WorkOrderID, error) {
	details := commands.WorkOrderDetailsInput{
		RequesterName:       w.draft.record.RequesterName,
		RequesterEmail:      w.draft.record.RequesterEmail,
		RetailerID:          w.draft.record.RetailerID,
		RetailerName:        w.draft.record.RetailerName,
		ShippingAddress:     w.draft.record.ShippingAddress,
		OnSiteContactName:   w.draft.record.OnSiteContactName,
		OnSiteContactNumber: w.draft.record.OnSiteContactNumber,
		DeliveryDate:        w.draft.record.RequestedDeliveryDate,
	}

	products := make([]commands.ProductInput, 0, len(record.Products))
	for _, product := range record.Products {
		products = append(products, commands.ProductInput{
			Name:     product.Name,
			Quantity: product.Quantity,
		})
	}

	if w.editing != nil {
		cmd, err := commands.NewUpdateWorkOrderCommand(*w.editing, details, products)
		if err != nil {
			return kernel.WorkOrderID{}, err
		}
		if err := w.updateOrder.Handle(ctx, cmd); err != nil {
			return kernel.WorkOrderID{}, err
		}
		return *w.editing, nil
	}

	cmd, err := commands.NewCreateWorkOrderCommand(details, products)
	if err != nil {
		return kernel.WorkOrderID{}, err
	}
	return w.createOrder.Handle(ctx, cmd)
}

func (w *Wizard) reset() {
	w.draft = Draft{}
	w.editing = nil
	w.state = Idle
}
