package commands

import (
	"errors"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/guard"
)

var ErrDeleteDeliveryNoteCommandIsNotConstructed = errors.New(
	"DeleteDeliveryNoteCommand must be created via NewDeleteDeliveryNoteCommand constructor",
)

// DeleteDeliveryNoteCommand represents a request to remove a delivery note.
type DeleteDeliveryNoteCommand struct { //nolint:recvcheck //using for validation
	noteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDeliveryNoteCommand creates a command to delete the note with the given id.
func NewDeleteDeliveryNoteCommand(noteID kernel.UUID) (DeleteDeliveryNoteCommand, error) {
	cmd := DeleteDeliveryNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNoteID(noteID); err != nil {
		return DeleteDeliveryNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDeliveryNoteCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryNoteCommandIsNotConstructed)
}

// NoteID returns the identifier of the note to delete.
func (c DeleteDeliveryNoteCommand) NoteID() kernel.UUID {
	return c.noteID
}

func (c *DeleteDeliveryNoteCommand) setNoteID(noteID kernel.UUID) error {
	if err := noteID.Validate(); err != nil {
		return err
	}
	c.noteID = noteID
	return nil
}
