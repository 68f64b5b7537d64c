package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"verduleria/internal/core/domain/model/kernel"
)

// GetProductsQueryHandler lists products straight from the database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for product listing queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the product listing, applying the query's filter when
// present. Results are sorted by name for stable output.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args, err := query.Filter().Where(productSchema())
	if err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			name,
			unit,
			sale_price
		FROM products
	`
	if where != "" {
		sqlText += " WHERE " + where
	}
	sqlText += " ORDER BY name, id"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		resp, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func scanProduct(rows *sql.Rows) (ProductResponse, error) {
	var resp ProductResponse
	var id uuid.UUID

	err := rows.Scan(
		&id,
		&resp.Name,
		&resp.Unit,
		&resp.SalePrice,
	)
	if err != nil {
		return ProductResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProductResponse{}, err
	}
	resp.ID = productID

	return resp, nil
}
