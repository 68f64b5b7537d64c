package queries

import (
	"context"

	"gorm.io/gorm"

	"verduleria/internal/pkg/errs"
)

// GetProductByIDQueryHandler retrieves one product from the database.
type GetProductByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetProductByIDQueryHandler creates a handler for single-product queries.
func NewGetProductByIDQueryHandler(db *gorm.DB) GetProductByIDQueryHandler {
	return GetProductByIDQueryHandler{db: db}
}

// Handle executes the lookup, returning an ObjectNotFoundError when the
// product does not exist.
func (h GetProductByIDQueryHandler) Handle(
	ctx context.Context,
	query GetProductByIDQuery,
) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			unit,
			sale_price
		FROM products
		WHERE id = ?
	`, query.ProductID().String()).Rows()
	if err != nil {
		return ProductResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ProductResponse{}, err
		}
		return ProductResponse{}, errs.NewObjectNotFoundError("productID", query.ProductID())
	}

	return scanProduct(rows)
}
