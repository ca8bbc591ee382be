package queries

import (
	"context"

	"gorm.io/gorm"
)

// SearchRetailersQueryHandler reads the retailer registry for the wizard's
// retailer picker.
type SearchRetailersQueryHandler struct {
	db *gorm.DB
}

// NewSearchRetailersQueryHandler creates a handler for retailer search.
// Requires a GORM database connection for query execution.
func NewSearchRetailersQueryHandler(db *gorm.DB) SearchRetailersQueryHandler {
	return SearchRetailersQueryHandler{db: db}
}

// Handle executes the retailer search.
// Matching is a case-insensitive name substring; results are sorted by name
// for stable picker output.
func (h SearchRetailersQueryHandler) Handle(
	ctx context.Context,
	query SearchRetailersQuery,
) ([]SearchRetailersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	retailers := make([]SearchRetailersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			street,
			city,
			state,
			zip_code
		FROM retailers
		WHERE LOWER(name) LIKE '%' || LOWER(?) || '%'
		ORDER BY name
	`, query.Term()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var retailerResp SearchRetailersQueryResponse

		if err = rows.Scan(
			&retailerResp.ID,
			&retailerResp.Name,
			&retailerResp.Street,
			&retailerResp.City,
			&retailerResp.State,
			&retailerResp.ZipCode,
		); err != nil {
			return nil, err
		}

		retailers = append(retailers, retailerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return retailers, nil
}
