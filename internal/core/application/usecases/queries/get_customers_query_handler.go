package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"verduleria/internal/core/domain/model/kernel"
)

// GetCustomersQueryHandler lists customers straight from the database.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer listing queries.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the customer listing, applying the query's filter when
// present. Results are sorted by business name for stable output.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args, err := query.Filter().Where(customerSchema())
	if err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			business_name,
			phone,
			address,
			email,
			tax_id
		FROM customers
	`
	if where != "" {
		sqlText += " WHERE " + where
	}
	sqlText += " ORDER BY business_name, id"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerResponse, 0)
	for rows.Next() {
		resp, scanErr := scanCustomer(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		customers = append(customers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

func scanCustomer(rows *sql.Rows) (CustomerResponse, error) {
	var resp CustomerResponse
	var id uuid.UUID

	err := rows.Scan(
		&id,
		&resp.BusinessName,
		&resp.Phone,
		&resp.Address,
		&resp.Email,
		&resp.TaxID,
	)
	if err != nil {
		return CustomerResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CustomerResponse{}, err
	}
	resp.ID = customerID

	return resp, nil
}
