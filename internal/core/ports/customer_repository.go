package ports

import (
	"context"

	"verduleria/internal/core/domain/model/customer"
	"verduleria/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by id, returning an ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Exists reports whether a customer with the given id is persisted.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes a customer by id.
	Delete(ctx context.Context, id kernel.UUID) error
}
