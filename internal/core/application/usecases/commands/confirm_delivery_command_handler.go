package commands

import (
	"context"

	"verduleria/internal/core/domain/model/note"
	"verduleria/internal/core/domain/model/order"
)

// ConfirmDeliveryCommandHandler records receipt of delivered goods.
// Confirming a note stamps the receiver details on the note and advances the
// order to "delivered" when it is not there yet; confirming an already
// delivered order only updates the receiver details.
type ConfirmDeliveryCommandHandler struct {
	uowFactory NoteUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory NoteUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command and returns the updated note.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) (*note.DeliveryNote, error) {
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
	aggregate, err := noteRepo.Get(ctx, cmd.NoteID())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, aggregate.OrderID())
	if err != nil {
		return nil, err
	}

	if ord.Status() != order.Delivered {
		if err = ord.ChangeStatus(order.Delivered); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, ord); err != nil {
			return nil, err
		}
	}

	aggregate.ConfirmReceipt(cmd.ReceivedBy(), cmd.ReceivedDoc(), cmd.Remarks())
	if err = noteRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
