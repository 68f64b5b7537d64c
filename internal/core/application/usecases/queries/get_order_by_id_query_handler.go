package queries

import (
	"context"

	"gorm.io/gorm"

	"verduleria/internal/pkg/errs"
)

// GetOrderByIDQueryHandler retrieves one order with its lines from the database.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order queries.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup, returning an ObjectNotFoundError when the
// order does not exist.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created_at,
			customer_id,
			status,
			note_issued,
			total
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	resp, err := scanOrder(rows)
	if err != nil {
		return OrderResponse{}, err
	}
	rows.Close()

	orders := []OrderResponse{resp}
	lister := GetOrdersQueryHandler{db: h.db}
	if err = lister.attachLines(ctx, orders); err != nil {
		return OrderResponse{}, err
	}

	return orders[0], nil
}
