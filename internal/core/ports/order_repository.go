package ports

import (
	"context"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Saving an order always rewrites its owned lines as a unit: lines have no
// independent identity outside their order, and deleting the order deletes
// its lines.
type OrderRepository interface {
	// Add persists a new order aggregate together with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, replacing its lines wholesale.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines, returning an ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Exists reports whether an order with the given id is persisted.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes an order and, through ownership, its lines.
	Delete(ctx context.Context, id kernel.UUID) error
}
