package queries

import (
	"errors"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/guard"
)

var ErrGetDeliveryNoteByOrderQueryIsNotConstructed = errors.New(
	"GetDeliveryNoteByOrderQuery must be created via NewGetDeliveryNoteByOrderQuery constructor",
)

// GetDeliveryNoteByOrderQuery retrieves the delivery note issued against an
// order. An order has at most one note, so the lookup is by order id.
type GetDeliveryNoteByOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryNoteByOrderQuery creates a query for an order's note.
func NewGetDeliveryNoteByOrderQuery(orderID kernel.UUID) (GetDeliveryNoteByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryNoteByOrderQuery{}, err
	}

	return GetDeliveryNoteByOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryNoteByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryNoteByOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose note is requested.
func (q GetDeliveryNoteByOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
