package queries

import (
	"context"

	"gorm.io/gorm"

	"verduleria/internal/pkg/errs"
)

// GetDeliveryNoteByIDQueryHandler retrieves one delivery note from the database.
type GetDeliveryNoteByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryNoteByIDQueryHandler creates a handler for single-note queries.
func NewGetDeliveryNoteByIDQueryHandler(db *gorm.DB) GetDeliveryNoteByIDQueryHandler {
	return GetDeliveryNoteByIDQueryHandler{db: db}
}

// Handle executes the lookup, returning an ObjectNotFoundError when the
// note does not exist.
func (h GetDeliveryNoteByIDQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryNoteByIDQuery,
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
		WHERE id = ?
	`, query.NoteID().String()).Rows()
	if err != nil {
		return DeliveryNoteResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryNoteResponse{}, err
		}
		return DeliveryNoteResponse{}, errs.NewObjectNotFoundError("noteID", query.NoteID())
	}

	return scanDeliveryNote(rows)
}
