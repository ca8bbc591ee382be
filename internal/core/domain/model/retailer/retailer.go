package retailer

import (
	"errors"
	"fmt"
	"regexp"

	"workorder/internal/pkg/errs"
)

// ErrRetailerIsNotConstructed is returned when a Retailer instance was not
// created through the NewRetailer factory method.
var ErrRetailerIsNotConstructed = errors.New("Retailer must be created via NewRetailer constructor")

var (
	statePattern = regexp.MustCompile(`^[A-Za-z]{2}$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// Retailer is a named shipping destination with a postal address. Retailers
// are identified by an externally assigned id and referenced by id from work
// orders; the registry owns them.
//
// Retailer follows these invariants:
//   - ID is non-empty and assigned by the external system
//   - Name is at least 2 characters
//   - Street is at least 5 characters
//   - City is at least 2 characters
//   - State is a 2-letter code
//   - ZipCode is 5 digits with an optional 4-digit suffix
//
// A retailer is immutable once created in this flow: the inline creation
// subflow is the only writer, and it never updates existing entries.
type Retailer struct {
	id      string
	name    string
	street  string
	city    string
	state   string
	zipCode string

	isConstructed bool
}

// NewRetailer creates a validated Retailer.
//
// Example:
//
//	r, err := retailer.NewRetailer("1", "1871 Florida", "1871 Florida Street", "Memphis", "TN", "38106")
//	if err != nil {
//	    // Handle validation error
//	}
func NewRetailer(id, name, street, city, state, zipCode string) (*Retailer, error) {
	r := &Retailer{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setStreet(street),
		r.setCity(city),
		r.setState(state),
		r.setZipCode(zipCode),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Retailer instance was properly constructed through
// NewRetailer. Call this when reconstructing retailers from persistence.
func (r *Retailer) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRetailerIsNotConstructed
	}
	return nil
}

// IsEqual compares two retailers by their identifiers.
func (r *Retailer) IsEqual(other *Retailer) bool {
	return other != nil && r.id == other.id
}

// ID returns the externally assigned identifier.
func (r *Retailer) ID() string {
	return r.id
}

// Name returns the retailer's display name.
func (r *Retailer) Name() string {
	return r.name
}

// Street returns the street address line.
func (r *Retailer) Street() string {
	return r.street
}

// City returns the city.
func (r *Retailer) City() string {
	return r.city
}

// State returns the 2-letter state code.
func (r *Retailer) State() string {
	return r.state
}

// ZipCode returns the postal code.
func (r *Retailer) ZipCode() string {
	return r.zipCode
}

// ShippingAddress synthesizes the default shipping address used when this
// retailer is selected in the wizard:
//
//	{street}
//	{city}, {state} {zipCode}
func (r *Retailer) ShippingAddress() string {
	return fmt.Sprintf("%s\n%s, %s %s", r.street, r.city, r.state, r.zipCode)
}

func (r *Retailer) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("retailerId")
	}
	r.id = id
	return nil
}

func (r *Retailer) setName(name string) error {
	if len(name) < 2 {
		return errs.NewValueIsOutOfRangeError("name", len(name), 2, maxFieldLength)
	}
	r.name = name
	return nil
}

func (r *Retailer) setStreet(street string) error {
	if len(street) < 5 {
		return errs.NewValueIsOutOfRangeError("street", len(street), 5, maxFieldLength)
	}
	r.street = street
	return nil
}

func (r *Retailer) setCity(city string) error {
	if len(city) < 2 {
		return errs.NewValueIsOutOfRangeError("city", len(city), 2, maxFieldLength)
	}
	r.city = city
	return nil
}

func (r *Retailer) setState(state string) error {
	if !statePattern.MatchString(state) {
		return errs.NewValueIsInvalidErrorWithCause(
			"state", fmt.Errorf("%q is not a 2-letter state code", state))
	}
	r.state = state
	return nil
}

func (r *Retailer) setZipCode(zipCode string) error {
	if !zipPattern.MatchString(zipCode) {
		return errs.NewValueIsInvalidErrorWithCause(
			"zipCode", fmt.Errorf("%q is not a 5 or 5+4 digit zip code", zipCode))
	}
	r.zipCode = zipCode
	return nil
}

const maxFieldLength = 200
