package http

import (
	"time"

	"workorder/internal/core/application/usecases/queries"
	"workorder/internal/core/application/validation"
	"workorder/internal/core/application/wizard"
)

// ErrorResponse is the uniform error body for non-validation failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FieldErrorResponse is one field-level validation failure.
type FieldErrorResponse struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// FieldErrorsResponse is the 422 body for schema validation failures.
type FieldErrorsResponse struct {
	Errors []FieldErrorResponse `json:"errors"`
}

func toFieldErrorsResponse(fieldErrors validation.FieldErrors) FieldErrorsResponse {
	response := FieldErrorsResponse{
		Errors: make([]FieldErrorResponse, len(fieldErrors)),
	}
	for i, fieldError := range fieldErrors {
		response.Errors[i] = FieldErrorResponse{
			Path:    fieldError.Path,
			Message: fieldError.Message,
		}
	}
	return response
}

// LoginRequest carries the access password.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the signed session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// ProductResponse is one line item on a listed work order.
type ProductResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// WorkOrderResponse is one dashboard row.
type WorkOrderResponse struct {
	ID                    string            `json:"id"`
	RequesterName         string            `json:"requesterName"`
	RequesterEmail        string            `json:"requesterEmail"`
	RetailerID            string            `json:"retailerId"`
	RetailerName          string            `json:"retailerName"`
	ShippingAddress       string            `json:"shippingAddress"`
	OnSiteContactName     string            `json:"onSiteContactName"`
	OnSiteContactNumber   string            `json:"onSiteContactNumber"`
	RequestedDeliveryDate string            `json:"requestedDeliveryDate"`
	Status                string            `json:"status"`
	Products              []ProductResponse `json:"products"`
	ProductCount          int               `json:"productCount"`
	CreatedDate           time.Time         `json:"createdDate"`
}

func toWorkOrderResponse(order queries.ListWorkOrdersQueryResponse) WorkOrderResponse {
	products := make([]ProductResponse, len(order.Products))
	for i, product := range order.Products {
		products[i] = ProductResponse{
			Name:     product.Name,
			Quantity: product.Quantity,
		}
	}

	return WorkOrderResponse{
		ID:                    order.ID,
		RequesterName:         order.RequesterName,
		RequesterEmail:        order.RequesterEmail,
		RetailerID:            order.RetailerID,
		RetailerName:          order.RetailerName,
		ShippingAddress:       order.ShippingAddress,
		OnSiteContactName:     order.OnSiteContactName,
		OnSiteContactNumber:   order.OnSiteContactNumber,
		RequestedDeliveryDate: order.DeliveryDate.Format(time.DateOnly),
		Status:                order.Status,
		Products:              products,
		ProductCount:          order.ProductCount(),
		CreatedDate:           order.CreatedAt,
	}
}

// RetailerResponse is one registry entry.
type RetailerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// StartWizardRequest optionally names a work order to edit; empty means a
// create flow.
type StartWizardRequest struct {
	WorkOrderID string `json:"workOrderId"`
}

// WizardDetailsRequest is the first-phase form.
type WizardDetailsRequest struct {
	RetailerID            string `json:"retailerId"`
	RetailerName          string `json:"retailerName"`
	ShippingAddress       string `json:"shippingAddress"`
	OnSiteContactName     string `json:"onSiteContactName"`
	OnSiteContactNumber   string `json:"onSiteContactNumber"`
	RequesterName         string `json:"requesterName"`
	RequesterEmail        string `json:"requesterEmail"`
	RequestedDeliveryDate string `json:"requestedDeliveryDate"`
}

func (r WizardDetailsRequest) toInput() validation.Phase1Input {
	return validation.Phase1Input{
		RetailerID:            r.RetailerID,
		RetailerName:          r.RetailerName,
		ShippingAddress:       r.ShippingAddress,
		OnSiteContactName:     r.OnSiteContactName,
		OnSiteContactNumber:   r.OnSiteContactNumber,
		RequesterName:         r.RequesterName,
		RequesterEmail:        r.RequesterEmail,
		RequestedDeliveryDate: r.RequestedDeliveryDate,
	}
}

// ProductEntryRequest is one row of the second-phase form. The quantity
// stays a string until the schema coerces it.
type ProductEntryRequest struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// WizardProductsRequest is the second-phase form.
type WizardProductsRequest struct {
	Products []ProductEntryRequest `json:"products"`
}

func (r WizardProductsRequest) toInput() validation.Phase2Input {
	products := make([]validation.ProductEntry, len(r.Products))
	for i, product := range r.Products {
		products[i] = validation.ProductEntry{
			Name:     product.Name,
			Quantity: product.Quantity,
		}
	}
	return validation.Phase2Input{Products: products}
}

// NewRetailerRequest is the inline retailer creation form. The retailer id
// comes from the external system, entered alongside the address.
type NewRetailerRequest struct {
	RetailerID string `json:"retailerId"`
	Name       string `json:"name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
}

func (r NewRetailerRequest) toInput() validation.NewRetailerInput {
	return validation.NewRetailerInput{
		RetailerID: r.RetailerID,
		Name:       r.Name,
		Street:     r.Street,
		City:       r.City,
		State:      r.State,
		ZipCode:    r.ZipCode,
	}
}

// WizardCommitResponse carries the committed order's identifier.
type WizardCommitResponse struct {
	WorkOrderID string `json:"workOrderId"`
}

// WizardResponse is the wizard's state plus its draft, for form prefill.
type WizardResponse struct {
	State    string                `json:"state"`
	Editing  bool                  `json:"editing"`
	Details  WizardDetailsRequest  `json:"details"`
	Products []ProductEntryRequest `json:"products"`
}

func toWizardResponse(w *wizard.Wizard) WizardResponse {
	draft := w.Draft()
	details := draft.Details()

	products := make([]ProductEntryRequest, len(draft.Products()))
	for i, product := range draft.Products() {
		products[i] = ProductEntryRequest{
			Name:     product.Name,
			Quantity: product.Quantity,
		}
	}

	return WizardResponse{
		State:   stateName(w.State()),
		Editing: w.IsEditing(),
		Details: WizardDetailsRequest{
			RetailerID:            details.RetailerID,
			RetailerName:          details.RetailerName,
			ShippingAddress:       details.ShippingAddress,
			OnSiteContactName:     details.OnSiteContactName,
			OnSiteContactNumber:   details.OnSiteContactNumber,
			RequesterName:         details.RequesterName,
			RequesterEmail:        details.RequesterEmail,
			RequestedDeliveryDate: details.RequestedDeliveryDate,
		},
		Products: products,
	}
}

func stateName(state wizard.State) string {
	switch state {
	case wizard.DetailsPhase:
		return "details"
	case wizard.ProductsPhase:
		return "products"
	default:
		return "idle"
	}
}
