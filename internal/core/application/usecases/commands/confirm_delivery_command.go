package commands

import (
	"errors"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/errs"
	"verduleria/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents a request to record that the goods
// documented by a delivery note reached the customer.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	noteID      kernel.UUID
	receivedBy  string
	receivedDoc string
	remarks     string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm receipt of a
// delivery. The receiver's name is required; the identity document and
// remarks are optional.
func NewConfirmDeliveryCommand(noteID kernel.UUID, receivedBy, receivedDoc, remarks string) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		receivedDoc: receivedDoc,
		remarks:     remarks,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNoteID(noteID),
		cmd.setReceivedBy(receivedBy),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// NoteID returns the identifier of the note being confirmed.
func (c ConfirmDeliveryCommand) NoteID() kernel.UUID {
	return c.noteID
}

// ReceivedBy returns the name of the person who received the goods.
func (c ConfirmDeliveryCommand) ReceivedBy() string {
	return c.receivedBy
}

// ReceivedDoc returns the receiver's identity document, if recorded.
func (c ConfirmDeliveryCommand) ReceivedDoc() string {
	return c.receivedDoc
}

// Remarks returns free-form delivery remarks, if any.
func (c ConfirmDeliveryCommand) Remarks() string {
	return c.remarks
}

func (c *ConfirmDeliveryCommand) setNoteID(noteID kernel.UUID) error {
	if err := noteID.Validate(); err != nil {
		return err
	}
	c.noteID = noteID
	return nil
}

func (c *ConfirmDeliveryCommand) setReceivedBy(receivedBy string) error {
	if receivedBy == "" {
		return errs.NewValueIsRequiredError("receivedBy")
	}
	c.receivedBy = receivedBy
	return nil
}
