package queries

import (
	"context"

	"gorm.io/gorm"

	"verduleria/internal/pkg/errs"
)

// GetCustomerByIDQueryHandler retrieves one customer from the database.
type GetCustomerByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerByIDQueryHandler creates a handler for single-customer queries.
func NewGetCustomerByIDQueryHandler(db *gorm.DB) GetCustomerByIDQueryHandler {
	return GetCustomerByIDQueryHandler{db: db}
}

// Handle executes the lookup, returning an ObjectNotFoundError when the
// customer does not exist.
func (h GetCustomerByIDQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerByIDQuery,
) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			business_name,
			phone,
			address,
			email,
			tax_id
		FROM customers
		WHERE id = ?
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return CustomerResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CustomerResponse{}, err
		}
		return CustomerResponse{}, errs.NewObjectNotFoundError("customerID", query.CustomerID())
	}

	return scanCustomer(rows)
}
