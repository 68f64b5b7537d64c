package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/criteria"
	"verduleria/internal/pkg/guard"
)

var ErrGetDeliveryNotesQueryIsNotConstructed = errors.New(
	"GetDeliveryNotesQuery must be created via NewGetDeliveryNotesQuery constructor",
)

// GetDeliveryNotesQuery retrieves delivery notes, optionally narrowed by a
// filter expression such as "numeroRemito>100,".
type GetDeliveryNotesQuery struct {
	filter criteria.Filter

	guard guard.ConstructorGuard
}

// NewGetDeliveryNotesQuery creates a delivery-note listing query.
func NewGetDeliveryNotesQuery(search string) (GetDeliveryNotesQuery, error) {
	filter, err := criteria.Parse(search)
	if err != nil {
		return GetDeliveryNotesQuery{}, err
	}

	return GetDeliveryNotesQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryNotesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryNotesQueryIsNotConstructed)
}

// Filter returns the parsed filter. An empty filter matches every note.
func (q GetDeliveryNotesQuery) Filter() criteria.Filter {
	return q.filter
}

// DeliveryNoteResponse represents delivery-note information in query results.
type DeliveryNoteResponse struct {
	ID          kernel.UUID
	Number      int64
	OrderID     kernel.UUID
	Total       decimal.Decimal
	IssuedAt    time.Time
	ReceivedBy  string
	ReceivedDoc string
	Remarks     string
}
