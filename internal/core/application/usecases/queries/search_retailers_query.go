package queries

import (
	"errors"

	"workorder/internal/pkg/guard"
)

var ErrSearchRetailersQueryIsNotConstructed = errors.New(
	"SearchRetailersQuery must be created via NewSearchRetailersQuery constructor",
)

// SearchRetailersQuery retrieves registry retailers whose name contains a
// case-insensitive substring. An empty term returns the whole registry,
// which the wizard's retailer picker shows before the user types.
type SearchRetailersQuery struct {
	term string

	guard guard.ConstructorGuard
}

// NewSearchRetailersQuery creates a retailer search query for the given term.
func NewSearchRetailersQuery(term string) SearchRetailersQuery {
	return SearchRetailersQuery{
		term:  term,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchRetailersQueryIsNotConstructed if validation fails.
func (q SearchRetailersQuery) Validate() error {
	return q.guard.Validate(ErrSearchRetailersQueryIsNotConstructed)
}

// Term returns the search substring.
func (q SearchRetailersQuery) Term() string {
	return q.term
}

// SearchRetailersQueryResponse is one registry entry with the address
// components the wizard needs to synthesize a shipping address.
type SearchRetailersQueryResponse struct {
	ID      string
	Name    string
	Street  string
	City    string
	State   string
	ZipCode string
}
