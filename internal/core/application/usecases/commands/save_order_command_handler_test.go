package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"verduleria/internal/core/application/usecases/commands"
	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/core/domain/model/order"
	"verduleria/internal/core/ports"
	"verduleria/internal/pkg/errs"
)

func fixedClock() ports.Clock {
	return ports.ClockFunc(func() time.Time {
		return time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC)
	})
}

func TestSaveOrderCommandHandler_Handle_CreateWithLines(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	lettuceID := kernel.NewUUID()
	tomatoID := kernel.NewUUID()

	cmd, err := commands.NewSaveOrderCommand(orderID, customerID, decimal.Zero, []commands.LineSpec{
		{ProductID: lettuceID, Quantity: decimal.NewFromInt(3), UnitPrice: decimal.RequireFromString("10.005")},
		{ProductID: tomatoID, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("2.00")},
	})
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Exists", ctx, lettuceID).Return(true, nil).Once()
	productRepo.On("Exists", ctx, tomatoID).Return(true, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Exists", ctx, orderID).Return(false, nil).Once()
	uow.On("CustomerRepository").Return(customerRepo).Once()
	customerRepo.On("Exists", ctx, customerID).Return(true, nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewSaveOrderCommandHandler(factory, fixedClock())
	saved, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Pending, saved.Status())
	require.Len(t, saved.Lines(), 2)
	// 3 x 10.005 + 1 x 2.00 = 32.015, rounded half-up to 32.02
	require.True(t, saved.Total().Equal(decimal.RequireFromString("32.02")),
		"got total %s", saved.Total())

	orderRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSaveOrderCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewSaveOrderCommand(orderID, customerID, decimal.NewFromInt(50), nil)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Exists", ctx, orderID).Return(false, nil).Once()
	uow.On("CustomerRepository").Return(customerRepo).Once()
	customerRepo.On("Exists", ctx, customerID).Return(false, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewSaveOrderCommandHandler(factory, fixedClock())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSaveOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewSaveOrderCommand(orderID, customerID, decimal.Zero, []commands.LineSpec{
		{ProductID: productID, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(5)},
	})
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Exists", ctx, productID).Return(false, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewSaveOrderCommandHandler(factory, fixedClock())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestSaveOrderCommandHandler_Handle_UpdateReplacesLines(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()

	existing, err := order.NewOrder(orderID, customerID, time.Now(), decimal.NewFromInt(10))
	require.NoError(t, err)

	cmd, err := commands.NewSaveOrderCommand(orderID, customerID, decimal.Zero, []commands.LineSpec{
		{ProductID: productID, Quantity: decimal.NewFromInt(4), UnitPrice: decimal.RequireFromString("2.50")},
	})
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Exists", ctx, productID).Return(true, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Exists", ctx, orderID).Return(true, nil).Once()
	orderRepo.On("Get", ctx, orderID).Return(existing, nil).Once()
	orderRepo.On("Update", ctx, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewSaveOrderCommandHandler(factory, fixedClock())
	saved, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, saved.Total().Equal(decimal.RequireFromString("10.00")),
		"got total %s", saved.Total())
	require.Len(t, saved.Lines(), 1)
	orderRepo.AssertExpectations(t)
}

func TestSaveOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)

	h := commands.NewSaveOrderCommandHandler(factory, fixedClock())
	_, err := h.Handle(ctx, commands.SaveOrderCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestSaveOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSaveOrderCommand(kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(5), nil)
	require.NoError(t, err)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewSaveOrderCommandHandler(factory, fixedClock())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}
