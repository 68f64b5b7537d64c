package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"verduleria/internal/core/domain/model/kernel"
)

// GetOrdersQueryHandler lists orders with their lines straight from the
// database. Lines are fetched in a second query and stitched onto their
// orders in memory.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the order listing. Filter conditions, the customer
// narrowing, and the status narrowing combine with AND. Results are sorted by
// creation time, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args, err := query.Filter().Where(orderSchema())
	if err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 3)
	if where != "" {
		conditions = append(conditions, where)
	}
	if customerID, ok := query.CustomerID(); ok {
		conditions = append(conditions, "customer_id = ?")
		args = append(args, customerID.String())
	}
	if status, ok := query.Status(); ok {
		conditions = append(conditions, "status = ?")
		args = append(args, status.String())
	}

	sqlText := `
		SELECT
			id,
			created_at,
			customer_id,
			status,
			note_issued,
			total
		FROM orders
	`
	for i, condition := range conditions {
		if i == 0 {
			sqlText += " WHERE " + condition
		} else {
			sqlText += " AND " + condition
		}
	}
	sqlText += " ORDER BY created_at DESC, id"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.attachLines(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachLines loads the lines of every listed order in one query and groups
// them by order id.
func (h GetOrdersQueryHandler) attachLines(ctx context.Context, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[kernel.UUID]int, len(orders))
	orderIDs := make([]string, 0, len(orders))
	for i, o := range orders {
		index[o.ID] = i
		orderIDs = append(orderIDs, o.ID.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id IN ?
		ORDER BY order_id, product_id
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, productID uuid.UUID
		var line OrderLineResponse

		if err = rows.Scan(&orderID, &productID, &line.Quantity, &line.UnitPrice); err != nil {
			return err
		}

		ownerID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}
		lineProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return idErr
		}
		line.ProductID = lineProductID
		line.Subtotal = line.Quantity.Mul(line.UnitPrice)

		if i, ok := index[ownerID]; ok {
			orders[i].Lines = append(orders[i].Lines, line)
		}
	}

	return rows.Err()
}

func scanOrder(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var id, customerID uuid.UUID

	err := rows.Scan(
		&id,
		&resp.CreatedAt,
		&customerID,
		&resp.Status,
		&resp.NoteIssued,
		&resp.Total,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.CustomerID = ownerID

	return resp, nil
}
