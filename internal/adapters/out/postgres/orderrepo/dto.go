// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order and its lines are saved as a unit: lines carry
// no identity of their own and are rewritten wholesale on every update.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status is stored under its wire-visible name so read-side filters can
// compare it without decoding.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time       `gorm:"not null"`
	CustomerID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Status     string          `gorm:"type:varchar(32);index;not null"`
	NoteIssued bool            `gorm:"not null"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order line row. The surrogate key exists only
// for the database; the domain identifies lines by position within their order.
type OrderLineDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CreatedAt:  aggregate.CreatedAt(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Status:     aggregate.Status().String(),
		NoteIssued: aggregate.NoteIssued(),
		Total:      aggregate.Total(),
		Lines:      lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(productID, lineDTO.Quantity, lineDTO.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, customerID, dto.CreatedAt, status, dto.NoteIssued, lines, dto.Total)
}
