package commands

import (
	"context"

	"verduleria/internal/core/domain/model/product"
)

// SaveProductCommandHandler creates or overwrites products.
type SaveProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewSaveProductCommandHandler creates a handler for product save operations.
func NewSaveProductCommandHandler(uowFactory ProductUoWFactory) SaveProductCommandHandler {
	return SaveProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product save command and returns the persisted product.
func (h *SaveProductCommandHandler) Handle(ctx context.Context, cmd SaveProductCommand) (*product.Product, error) {
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

	repo := uow.ProductRepository()
	exists, err := repo.Exists(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	var aggregate *product.Product
	if exists {
		aggregate, err = repo.Get(ctx, cmd.ProductID())
		if err != nil {
			return nil, err
		}
		if err = aggregate.Update(cmd.Name(), cmd.Unit(), cmd.SalePrice()); err != nil {
			return nil, err
		}
		if err = repo.Update(ctx, aggregate); err != nil {
			return nil, err
		}
	} else {
		aggregate, err = product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Unit(), cmd.SalePrice())
		if err != nil {
			return nil, err
		}
		if err = repo.Add(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
