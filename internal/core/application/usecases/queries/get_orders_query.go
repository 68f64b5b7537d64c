package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/core/domain/model/order"
	"verduleria/internal/pkg/criteria"
	"verduleria/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders together with their lines. Beyond the
// filter expression (for example "estado:PENDING,montoTotal>100,") the query
// can be narrowed to one customer or one lifecycle status, which the filter
// grammar cannot express for identifier values.
type GetOrdersQuery struct {
	filter      criteria.Filter
	customerID  kernel.UUID
	hasCustomer bool
	status      order.Status
	hasStatus   bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query.
func NewGetOrdersQuery(search string) (GetOrdersQuery, error) {
	filter, err := criteria.Parse(search)
	if err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ForCustomer returns a copy of the query narrowed to one customer's orders.
func (q GetOrdersQuery) ForCustomer(customerID kernel.UUID) (GetOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	q.customerID = customerID
	q.hasCustomer = true
	return q, nil
}

// InStatus returns a copy of the query narrowed to one lifecycle status.
func (q GetOrdersQuery) InStatus(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	q.status = status
	q.hasStatus = true
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Filter returns the parsed filter. An empty filter matches every order.
func (q GetOrdersQuery) Filter() criteria.Filter {
	return q.filter
}

// CustomerID returns the customer narrowing, if set.
func (q GetOrdersQuery) CustomerID() (kernel.UUID, bool) {
	return q.customerID, q.hasCustomer
}

// Status returns the status narrowing, if set.
func (q GetOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.hasStatus
}

// OrderLineResponse represents one order line in query results.
type OrderLineResponse struct {
	ProductID kernel.UUID
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// OrderResponse represents order information in query results.
type OrderResponse struct {
	ID         kernel.UUID
	CreatedAt  time.Time
	CustomerID kernel.UUID
	Status     string
	NoteIssued bool
	Total      decimal.Decimal
	Lines      []OrderLineResponse
}
