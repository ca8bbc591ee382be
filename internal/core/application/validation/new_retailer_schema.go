package validation

import (
	"regexp"
)

var (
	statePattern = regexp.MustCompile(`^[A-Za-z]{2}$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// NewRetailerInput is the raw inline retailer creation form record.
type NewRetailerInput struct {
	RetailerID string
	Name       string
	Street     string
	City       string
	State      string
	ZipCode    string
}

// NewRetailerRecord is the validated retailer creation record.
type NewRetailerRecord struct {
	RetailerID string
	Name       string
	Street     string
	City       string
	State      string
	ZipCode    string
}

// ValidateNewRetailer checks the inline retailer creation subflow's fields.
// The retailer identifier comes from the external system, so the form
// supplies it rather than generating one.
func ValidateNewRetailer(input NewRetailerInput) (NewRetailerRecord, FieldErrors) {
	var fieldErrors FieldErrors

	if input.RetailerID == "" {
		fieldErrors = append(fieldErrors, FieldError{
			Path: "retailerId", Message: "A retailer id is required",
		})
	}
	if len(input.Name) < 2 {
		fieldErrors = append(fieldErrors, FieldError{
			Path: "name", Message: "Name must be at least 2 characters",
		})
	}
	if len(input.Street) < 5 {
		fieldErrors = append(fieldErrors, FieldError{
			Path: "street", Message: "Street must be at least 5 characters",
		})
	}
	if len(input.City) < 2 {
		fieldErrors = append(fieldErrors, FieldError{
			Path: "city", Message: "City must be at least 2 characters",
		})
	}
	if !statePattern.MatchString(input.State) {
		fieldErrors = append(fieldErrors, FieldError{
			Path: "state", Message: "State must be a 2-letter code",
		})
	}
	if !zipPattern.MatchString(input.ZipCode) {
		fieldErrors = append(fieldErrors, FieldError{
			Path: "zipCode", Message: "Zip code must be 5 digits with an optional 4-digit suffix",
		})
	}

	if len(fieldErrors) > 0 {
		return NewRetailerRecord{}, fieldErrors
	}

	return NewRetailerRecord{
		RetailerID: input.RetailerID,
		Name:       input.Name,
		Street:     input.Street,
		City:       input.City,
		State:      input.State,
		ZipCode:    input.ZipCode,
	}, nil
}
