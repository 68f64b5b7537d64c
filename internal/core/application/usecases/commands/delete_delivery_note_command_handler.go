package commands

import (
	"context"
	"errors"

	"verduleria/internal/pkg/errs"
)

// DeleteDeliveryNoteCommandHandler removes delivery notes. Removing a note
// clears the issued flag on its order so the order becomes eligible for note
// generation again.
type DeleteDeliveryNoteCommandHandler struct {
	uowFactory NoteUoWFactory
}

// NewDeleteDeliveryNoteCommandHandler creates a handler for note deletion.
func NewDeleteDeliveryNoteCommandHandler(uowFactory NoteUoWFactory) DeleteDeliveryNoteCommandHandler {
	return DeleteDeliveryNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the note deletion command.
// Deleting a note that does not exist is an error, not a no-op. The note's
// order may legitimately be gone already; in that case only the note is
// removed.
func (h *DeleteDeliveryNoteCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	noteRepo := uow.DeliveryNoteRepository()
	aggregate, err := noteRepo.Get(ctx, cmd.NoteID())
	if err != nil {
		return err
	}

	if err = noteRepo.Delete(ctx, cmd.NoteID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, aggregate.OrderID())
	if err == nil {
		ord.ClearNoteIssued()
		if err = orderRepo.Update(ctx, ord); err != nil {
			return err
		}
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	return uow.Commit(ctx)
}
