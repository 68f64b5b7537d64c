package queries

import (
	"errors"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/criteria"
	"verduleria/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves customers, optionally narrowed by a filter
// expression such as "razonSocial:jose,".
type GetCustomersQuery struct {
	filter criteria.Filter

	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a customer listing query. The search string is
// parsed eagerly so malformed filters are rejected before any database work.
func NewGetCustomersQuery(search string) (GetCustomersQuery, error) {
	filter, err := criteria.Parse(search)
	if err != nil {
		return GetCustomersQuery{}, err
	}

	return GetCustomersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// Filter returns the parsed filter. An empty filter matches every customer.
func (q GetCustomersQuery) Filter() criteria.Filter {
	return q.filter
}

// CustomerResponse represents customer information in query results.
type CustomerResponse struct {
	ID           kernel.UUID
	BusinessName string
	Phone        string
	Address      string
	Email        string
	TaxID        string
}
