// Package noterepo provides data transfer objects and mapping functions for
// delivery-note persistence. The unique index on order_id is the authoritative
// guard for the one-note-per-order rule.
package noterepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/core/domain/model/note"
)

// DeliveryNoteDTO represents the database structure for persisting delivery notes.
type DeliveryNoteDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number      int64           `gorm:"not null"`
	OrderID     uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IssuedAt    time.Time       `gorm:"not null"`
	ReceivedBy  string
	ReceivedDoc string
	Remarks     string
}

// TableName specifies the database table name for delivery note entities.
func (DeliveryNoteDTO) TableName() string {
	return "delivery_notes"
}

func fromDomain(aggregate *note.DeliveryNote) DeliveryNoteDTO {
	return DeliveryNoteDTO{
		ID:          aggregate.ID().Bytes(),
		Number:      aggregate.Number(),
		OrderID:     aggregate.OrderID().Bytes(),
		Total:       aggregate.Total(),
		IssuedAt:    aggregate.IssuedAt(),
		ReceivedBy:  aggregate.ReceivedBy(),
		ReceivedDoc: aggregate.ReceivedDoc(),
		Remarks:     aggregate.Remarks(),
	}
}

func toDomain(dto DeliveryNoteDTO) (*note.DeliveryNote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return note.RestoreDeliveryNote(id, dto.Number, orderID, dto.Total, dto.IssuedAt,
		dto.ReceivedBy, dto.ReceivedDoc, dto.Remarks)
}
