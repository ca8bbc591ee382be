package workorder

import (
	"workorder/internal/pkg/errs"
)

// Catalog is the closed, ordered set of product names a line item may use.
// The catalog is supplied by configuration, never hard-coded in the wizard.
type Catalog struct {
	names []string
}

// NewCatalog creates a Catalog from an ordered list of product names.
// The list must be non-empty and free of blanks.
func NewCatalog(names []string) (Catalog, error) {
	if len(names) == 0 {
		return Catalog{}, errs.NewValueIsRequiredError("productCatalog")
	}
	for _, name := range names {
		if name == "" {
			return Catalog{}, errs.NewValueIsRequiredError("productCatalog entry")
		}
	}
	return Catalog{names: append([]string(nil), names...)}, nil
}

// Names returns the catalog entries in their configured order.
func (c Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Contains reports whether name is a catalog entry.
func (c Catalog) Contains(name string) bool {
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}
