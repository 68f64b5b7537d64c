package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/criteria"
	"verduleria/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves products, optionally narrowed by a filter
// expression such as "nombre:lechuga," or "precioVenta<100,".
type GetProductsQuery struct {
	filter criteria.Filter

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a product listing query.
func NewGetProductsQuery(search string) (GetProductsQuery, error) {
	filter, err := criteria.Parse(search)
	if err != nil {
		return GetProductsQuery{}, err
	}

	return GetProductsQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// Filter returns the parsed filter. An empty filter matches every product.
func (q GetProductsQuery) Filter() criteria.Filter {
	return q.filter
}

// ProductResponse represents product information in query results.
type ProductResponse struct {
	ID        kernel.UUID
	Name      string
	Unit      string
	SalePrice decimal.Decimal
}
