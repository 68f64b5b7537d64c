package ports

import (
	"context"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by id, returning an ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Exists reports whether a product with the given id is persisted.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes a product by id.
	Delete(ctx context.Context, id kernel.UUID) error
}
