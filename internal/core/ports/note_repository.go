package ports

import (
	"context"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/core/domain/model/note"
)

// DeliveryNoteRepository defines the persistence contract for delivery notes.
//
// The storage layer MUST enforce a uniqueness constraint on the order
// reference: the workflow's duplicate pre-check is advisory under concurrency,
// and Add is expected to surface a ConflictError when the constraint trips.
type DeliveryNoteRepository interface {
	// Add persists a new delivery note. Returns a ConflictError when a note
	// for the same order already exists.
	Add(ctx context.Context, aggregate *note.DeliveryNote) error

	// Update persists changes to an existing delivery note.
	Update(ctx context.Context, aggregate *note.DeliveryNote) error

	// Get retrieves a delivery note by id, returning an ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*note.DeliveryNote, error)

	// GetByOrderID retrieves the note issued against the given order,
	// returning an ObjectNotFoundError when the order has none.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*note.DeliveryNote, error)

	// Exists reports whether a delivery note with the given id is persisted.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes a delivery note by id.
	Delete(ctx context.Context, id kernel.UUID) error
}
