package queries

import (
	"context"

	"gorm.io/gorm"

	"verduleria/internal/pkg/errs"
)

// GetDeliveryNoteByOrderQueryHandler retrieves the note issued against an
// order, if any.
type GetDeliveryNoteByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryNoteByOrderQueryHandler creates a handler for per-order note queries.
func NewGetDeliveryNoteByOrderQueryHandler(db *gorm.DB) GetDeliveryNoteByOrderQueryHandler {
	return GetDeliveryNoteByOrderQueryHandler{db: db}
}

// Handle executes the lookup, returning an ObjectNotFoundError when the order
// has no note.
func (h GetDeliveryNoteByOrderQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryNoteByOrderQuery,
) (DeliveryNoteResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryNoteResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			order_id,
			total,
			issued_at,
			received_by,
			received_doc,
			remarks
		FROM delivery_notes
		WHERE order_id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return DeliveryNoteResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryNoteResponse{}, err
		}
		return DeliveryNoteResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	return scanDeliveryNote(rows)
}
