package validation

import (
	"fmt"
	"strconv"
	"strings"

	"workorder/internal/core/domain/model/workorder"
)

// ProductEntry is one raw product row of the wizard's second phase. Quantity
// arrives as entered, so it is a string until coercion.
type ProductEntry struct {
	Name     string
	Quantity string
}

// Phase2Input is the raw second-phase form record.
type Phase2Input struct {
	Products []ProductEntry
}

// ValidatedProduct is one coerced, catalog-checked product row.
type ValidatedProduct struct {
	Name     string
	Quantity int
}

// Phase2Record is the validated second-phase record.
type Phase2Record struct {
	Products []ValidatedProduct
}

// ValidatePhase2 checks the product list of the wizard's second phase against
// the catalog. Quantity strings are coerced to integers; a coercion failure
// is a field error, never a crash.
func ValidatePhase2(input Phase2Input, catalog workorder.Catalog) (Phase2Record, FieldErrors) {
	var fieldErrors FieldErrors

	if len(input.Products) == 0 {
		return Phase2Record{}, FieldErrors{{
			Path: "products", Message: "At least one product is required",
		}}
	}

	products := make([]ValidatedProduct, 0, len(input.Products))
	for i, entry := range input.Products {
		path := fmt.Sprintf("products[%d]", i)

		if entry.Name == "" {
			fieldErrors = append(fieldErrors, FieldError{
				Path: path + ".name", Message: "A product must be selected",
			})
		} else if !catalog.Contains(entry.Name) {
			fieldErrors = append(fieldErrors, FieldError{
				Path: path + ".name", Message: "Product is not in the catalog",
			})
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(entry.Quantity))
		switch {
		case err != nil:
			fieldErrors = append(fieldErrors, FieldError{
				Path: path + ".quantity", Message: "Quantity must be a whole number",
			})
		case quantity < 1:
			fieldErrors = append(fieldErrors, FieldError{
				Path: path + ".quantity", Message: "Quantity must be at least 1",
			})
		default:
			products = append(products, ValidatedProduct{Name: entry.Name, Quantity: quantity})
		}
	}

	if len(fieldErrors) > 0 {
		return Phase2Record{}, fieldErrors
	}

	return Phase2Record{Products: products}, nil
}
