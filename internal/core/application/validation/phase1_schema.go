package validation

import (
	"net/mail"
	"regexp"
	"time"

	"workorder/internal/core/domain/model/kernel"
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// Phase1Input is the raw first-phase form record, all fields as entered.
type Phase1Input struct {
	RetailerID            string
	RetailerName          string
	ShippingAddress       string
	OnSiteContactName     string
	OnSiteContactNumber   string
	RequesterName         string
	RequesterEmail        string
	RequestedDeliveryDate string
}

// Phase1Record is the validated first-phase record with the delivery date
// parsed into its value object.
type Phase1Record struct {
	RetailerID            string
	RetailerName          string
	ShippingAddress       string
	OnSiteContactName     string
	OnSiteContactNumber   string
	RequesterName         string
	RequesterEmail        string
	RequestedDeliveryDate kernel.DeliveryDate
}

// ValidatePhase1 checks the logistics fields of the wizard's first phase.
// The delivery date window (today through one year out) is enforced here,
// at entry time only; a stored order whose date has since passed stays valid.
func ValidatePhase1(input Phase1Input, now time.Time) (Phase1Record, FieldErrors) {
	var fieldErrors FieldErrors

	if input.RetailerID == "" {
		fieldErrors = append(fieldErrors, FieldError{
			Path: "retailerId", Message: "A retailer must be selected",
		})
	}
	if len(input.RetailerName) < 2 {
		fieldErrors = append(fieldErrors, FieldError{
			Path: "retailerName", Message: "Retailer name must be at least 2 characters",
		})
	}
	if len(input.ShippingAddress) < 10 {
		fieldErrors = append(fieldErrors, FieldError{
			Path: "shippingAddress", Message: "Shipping address must be at least 10 characters",
		})
	}
	if len(input.OnSiteContactName) < 2 {
		fieldErrors = append(fieldErrors, FieldError{
			Path: "onSiteContactName", Message: "Contact name must be at least 2 characters",
		})
	}
	if !phonePattern.MatchString(input.OnSiteContactNumber) {
		fieldErrors = append(fieldErrors, FieldError{
			Path: "onSiteContactNumber", Message: "Contact number must be a valid phone number",
		})
	}
	if len(input.RequesterName) < 2 {
		fieldErrors = append(fieldErrors, FieldError{
			Path: "requesterName", Message: "Requester name must be at least 2 characters",
		})
	}
	if _, err := mail.ParseAddress(input.RequesterEmail); err != nil {
		fieldErrors = append(fieldErrors, FieldError{
			Path: "requesterEmail", Message: "Requester email must be a valid email address",
		})
	}

	deliveryDate, dateErr := parseDeliveryDate(input.RequestedDeliveryDate, now)
	if dateErr != "" {
		fieldErrors = append(fieldErrors, FieldError{
			Path: "requestedDeliveryDate", Message: dateErr,
		})
	}

	if len(fieldErrors) > 0 {
		return Phase1Record{}, fieldErrors
	}

	return Phase1Record{
		RetailerID:            input.RetailerID,
		RetailerName:          input.RetailerName,
		ShippingAddress:       input.ShippingAddress,
		OnSiteContactName:     input.OnSiteContactName,
		OnSiteContactNumber:   input.OnSiteContactNumber,
		RequesterName:         input.RequesterName,
		RequesterEmail:        input.RequesterEmail,
		RequestedDeliveryDate: deliveryDate,
	}, nil
}

func parseDeliveryDate(value string, now time.Time) (kernel.DeliveryDate, string) {
	if value == "" {
		return kernel.DeliveryDate{}, "A delivery date is required"
	}

	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return kernel.DeliveryDate{}, "Delivery date must be in YYYY-MM-DD format"
	}

	deliveryDate, err := kernel.NewDeliveryDate(parsed, now)
	if err != nil {
		return kernel.DeliveryDate{}, "Delivery date must be today or later and within one year"
	}

	return deliveryDate, ""
}
