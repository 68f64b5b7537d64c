package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"verduleria/internal/core/domain/model/kernel"
)

// GetDeliveryNotesQueryHandler lists delivery notes straight from the database.
type GetDeliveryNotesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryNotesQueryHandler creates a handler for note listing queries.
func NewGetDeliveryNotesQueryHandler(db *gorm.DB) GetDeliveryNotesQueryHandler {
	return GetDeliveryNotesQueryHandler{db: db}
}

// Handle executes the note listing, applying the query's filter when present.
// Results are sorted by note number.
func (h GetDeliveryNotesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryNotesQuery,
) ([]DeliveryNoteResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args, err := query.Filter().Where(deliveryNoteSchema())
	if err != nil {
		return nil, err
	}

	sqlText := `
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
	`
	if where != "" {
		sqlText += " WHERE " + where
	}
	sqlText += " ORDER BY number"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]DeliveryNoteResponse, 0)
	for rows.Next() {
		resp, scanErr := scanDeliveryNote(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		notes = append(notes, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}

func scanDeliveryNote(rows *sql.Rows) (DeliveryNoteResponse, error) {
	var resp DeliveryNoteResponse
	var id, orderID uuid.UUID

	err := rows.Scan(
		&id,
		&resp.Number,
		&orderID,
		&resp.Total,
		&resp.IssuedAt,
		&resp.ReceivedBy,
		&resp.ReceivedDoc,
		&resp.Remarks,
	)
	if err != nil {
		return DeliveryNoteResponse{}, err
	}

	noteID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return DeliveryNoteResponse{}, err
	}
	resp.ID = noteID

	documentedID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return DeliveryNoteResponse{}, err
	}
	resp.OrderID = documentedID

	return resp, nil
}
