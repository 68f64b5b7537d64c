package commands

import (
	"context"

	"verduleria/internal/core/domain/model/order"
	"verduleria/internal/core/ports"
	"verduleria/internal/pkg/errs"
)

// SaveOrderCommandHandler creates or overwrites orders.
//
// New orders start in "pending" status with a creation timestamp taken from
// the injected clock. For existing orders the customer and status are left
// untouched; supplied lines replace the stored ones and force a total
// recomputation.
type SaveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewSaveOrderCommandHandler creates a handler for order save operations.
func NewSaveOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) SaveOrderCommandHandler {
	return SaveOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order save command and returns the persisted order.
// An unknown customer is rejected as invalid input; an unknown line product
// is reported as not found.
func (h *SaveOrderCommandHandler) Handle(ctx context.Context, cmd SaveOrderCommand) (*order.Order, error) {
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

	lines, err := h.resolveLines(ctx, uow, cmd.Lines())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	exists, err := orderRepo.Exists(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	var aggregate *order.Order
	if exists {
		aggregate, err = orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return nil, err
		}
		if len(lines) > 0 {
			if err = aggregate.ReplaceLines(lines); err != nil {
				return nil, err
			}
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return nil, err
		}
	} else {
		customerExists, existsErr := uow.CustomerRepository().Exists(ctx, cmd.CustomerID())
		if existsErr != nil {
			return nil, existsErr
		}
		if !customerExists {
			return nil, errs.NewValueIsInvalidError("customerID")
		}

		aggregate, err = order.NewOrder(cmd.OrderID(), cmd.CustomerID(), h.clock.Now(), cmd.Total())
		if err != nil {
			return nil, err
		}
		if len(lines) > 0 {
			if err = aggregate.ReplaceLines(lines); err != nil {
				return nil, err
			}
		}
		if err = orderRepo.Add(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// resolveLines verifies each referenced product and converts the requested
// line specs into domain lines.
func (h *SaveOrderCommandHandler) resolveLines(ctx context.Context, uow OrderUoW, specs []LineSpec) ([]order.Line, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	productRepo := uow.ProductRepository()
	lines := make([]order.Line, 0, len(specs))
	for _, spec := range specs {
		exists, err := productRepo.Exists(ctx, spec.ProductID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errs.NewObjectNotFoundError("productID", spec.ProductID)
		}

		line, err := order.NewLine(spec.ProductID, spec.Quantity, spec.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
