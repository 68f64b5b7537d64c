package queries

import (
	"errors"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/guard"
)

var ErrGetDeliveryNoteByIDQueryIsNotConstructed = errors.New(
	"GetDeliveryNoteByIDQuery must be created via NewGetDeliveryNoteByIDQuery constructor",
)

// GetDeliveryNoteByIDQuery retrieves a single delivery note.
type GetDeliveryNoteByIDQuery struct {
	noteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryNoteByIDQuery creates a query for one delivery note.
func NewGetDeliveryNoteByIDQuery(noteID kernel.UUID) (GetDeliveryNoteByIDQuery, error) {
	if err := noteID.Validate(); err != nil {
		return GetDeliveryNoteByIDQuery{}, err
	}

	return GetDeliveryNoteByIDQuery{
		noteID: noteID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryNoteByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryNoteByIDQueryIsNotConstructed)
}

// NoteID returns the requested note's identifier.
func (q GetDeliveryNoteByIDQuery) NoteID() kernel.UUID {
	return q.noteID
}
