package commands

import (
	"context"
	"errors"
	"fmt"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/core/domain/model/note"
	"verduleria/internal/core/domain/model/order"
	"verduleria/internal/core/ports"
	"verduleria/internal/pkg/errs"
)

// GenerateDeliveryNoteCommandHandler issues delivery notes against orders.
//
// An order gets at most one note, and only while it is being prepared or is
// already on the road. Issuing a note against an order in preparation also
// pushes the order to "shipped": the note is the document that accompanies the
// goods out the door.
type GenerateDeliveryNoteCommandHandler struct {
	uowFactory NoteUoWFactory
	clock      ports.Clock
}

// NewGenerateDeliveryNoteCommandHandler creates a handler for note issuance.
func NewGenerateDeliveryNoteCommandHandler(uowFactory NoteUoWFactory, clock ports.Clock) GenerateDeliveryNoteCommandHandler {
	return GenerateDeliveryNoteCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the note issuance command and returns the issued note.
// A second issuance against the same order fails with a conflict; the
// duplicate check here is advisory, the storage uniqueness constraint is the
// authority under concurrent issuance.
func (h *GenerateDeliveryNoteCommandHandler) Handle(ctx context.Context, cmd GenerateDeliveryNoteCommand) (*note.DeliveryNote, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	noteRepo := uow.DeliveryNoteRepository()
	_, err := noteRepo.GetByOrderID(ctx, cmd.OrderID())
	if err == nil {
		return nil, errs.NewConflictError(
			fmt.Sprintf("order %s already has a delivery note", cmd.OrderID()))
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !aggregate.Status().AllowsDeliveryNote() {
		return nil, errs.NewInvalidStateError(
			fmt.Sprintf("cannot issue a delivery note for order in status %s", aggregate.Status()))
	}

	total := aggregate.LinesTotal()
	if len(aggregate.Lines()) == 0 {
		total = kernel.RoundMoney(aggregate.Total())
	}

	issued, err := note.NewDeliveryNote(cmd.NoteID(), cmd.Number(), cmd.OrderID(), total, h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = noteRepo.Add(ctx, issued); err != nil {
		return nil, err
	}

	if aggregate.Status() == order.InPreparation {
		if err = aggregate.ChangeStatus(order.Shipped); err != nil {
			return nil, err
		}
	}
	aggregate.MarkNoteIssued()

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return issued, nil
}
