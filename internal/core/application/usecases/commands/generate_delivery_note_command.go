package commands

import (
	"errors"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/errs"
	"verduleria/internal/pkg/guard"
)

var ErrGenerateDeliveryNoteCommandIsNotConstructed = errors.New(
	"GenerateDeliveryNoteCommand must be created via NewGenerateDeliveryNoteCommand constructor",
)

// GenerateDeliveryNoteCommand represents a request to issue a delivery note
// against an order. The note number is assigned by the caller, matching the
// paper-book numbering the business keeps outside the system.
type GenerateDeliveryNoteCommand struct { //nolint:recvcheck //using for validation
	noteID  kernel.UUID
	number  int64
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateDeliveryNoteCommand creates a command to issue a delivery note.
// The note number must be positive.
func NewGenerateDeliveryNoteCommand(noteID kernel.UUID, number int64, orderID kernel.UUID) (GenerateDeliveryNoteCommand, error) {
	cmd := GenerateDeliveryNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNoteID(noteID),
		cmd.setNumber(number),
		cmd.setOrderID(orderID),
	); err != nil {
		return GenerateDeliveryNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateDeliveryNoteCommand) Validate() error {
	return c.guard.Validate(ErrGenerateDeliveryNoteCommandIsNotConstructed)
}

// NoteID returns the identifier for the note to issue.
func (c GenerateDeliveryNoteCommand) NoteID() kernel.UUID {
	return c.noteID
}

// Number returns the caller-assigned note number.
func (c GenerateDeliveryNoteCommand) Number() int64 {
	return c.number
}

// OrderID returns the identifier of the order the note documents.
func (c GenerateDeliveryNoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *GenerateDeliveryNoteCommand) setNoteID(noteID kernel.UUID) error {
	if err := noteID.Validate(); err != nil {
		return err
	}
	c.noteID = noteID
	return nil
}

func (c *GenerateDeliveryNoteCommand) setNumber(number int64) error {
	if number <= 0 {
		return errs.NewValueIsInvalidError("number")
	}
	c.number = number
	return nil
}

func (c *GenerateDeliveryNoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
