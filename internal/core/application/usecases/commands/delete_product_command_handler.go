package commands

import (
	"context"

	"verduleria/internal/pkg/errs"
)

// DeleteProductCommandHandler removes products from the system.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for product deletion.
func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product deletion command.
// Deleting a product that does not exist is an error, not a no-op.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	repo := uow.ProductRepository()
	exists, err := repo.Exists(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("productID", cmd.ProductID())
	}

	if err = repo.Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
