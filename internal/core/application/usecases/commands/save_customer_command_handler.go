package commands

import (
	"context"

	"verduleria/internal/core/domain/model/customer"
)

// SaveCustomerCommandHandler creates or overwrites customers.
// An existing customer with the same id is updated in place; otherwise a new
// one is inserted.
type SaveCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewSaveCustomerCommandHandler creates a handler for customer save operations.
func NewSaveCustomerCommandHandler(uowFactory CustomerUoWFactory) SaveCustomerCommandHandler {
	return SaveCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer save command and returns the persisted customer.
func (h *SaveCustomerCommandHandler) Handle(ctx context.Context, cmd SaveCustomerCommand) (*customer.Customer, error) {
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

	repo := uow.CustomerRepository()
	exists, err := repo.Exists(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	var aggregate *customer.Customer
	if exists {
		aggregate, err = repo.Get(ctx, cmd.CustomerID())
		if err != nil {
			return nil, err
		}
		if err = aggregate.Update(cmd.BusinessName(), cmd.Phone(), cmd.Address(), cmd.Email(), cmd.TaxID()); err != nil {
			return nil, err
		}
		if err = repo.Update(ctx, aggregate); err != nil {
			return nil, err
		}
	} else {
		aggregate, err = customer.NewCustomer(cmd.CustomerID(), cmd.BusinessName(), cmd.Phone(),
			cmd.Address(), cmd.Email(), cmd.TaxID())
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
