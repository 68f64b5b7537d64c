package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"verduleria/internal/core/application/usecases/commands"
	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/core/domain/model/product"
	"verduleria/internal/pkg/errs"
)

func TestSaveProductCommandHandler_Handle_CreatesNewProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()

	cmd, err := commands.NewSaveProductCommand(productID, "Lechuga", "kg", decimal.RequireFromString("350.50"))
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	factory := new(MockProductUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Exists", ctx, productID).Return(false, nil).Once(),
		productRepo.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewSaveProductCommandHandler(factory)
	saved, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Lechuga", saved.Name())
	require.True(t, saved.SalePrice().Equal(decimal.RequireFromString("350.50")))
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSaveProductCommandHandler_Handle_UpdatesExistingProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	existing, err := product.NewProduct(productID, "Lechuga", "unidad", decimal.NewFromInt(200))
	require.NoError(t, err)

	cmd, err := commands.NewSaveProductCommand(productID, "Lechuga criolla", "kg", decimal.NewFromInt(420))
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	factory := new(MockProductUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Exists", ctx, productID).Return(true, nil).Once(),
		productRepo.On("Get", ctx, productID).Return(existing, nil).Once(),
		productRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewSaveProductCommandHandler(factory)
	saved, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Lechuga criolla", saved.Name())
	require.Equal(t, "kg", saved.Unit())
	productRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	productRepo.AssertExpectations(t)
}

func TestSaveProductCommand_RejectsNonPositivePrice(t *testing.T) {
	_, err := commands.NewSaveProductCommand(kernel.NewUUID(), "Lechuga", "kg", decimal.Zero)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDeleteProductCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()

	cmd, err := commands.NewDeleteProductCommand(productID)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Exists", ctx, productID).Return(false, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewDeleteProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
