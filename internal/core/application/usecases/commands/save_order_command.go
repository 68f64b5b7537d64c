package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/errs"
	"verduleria/internal/pkg/guard"
)

var ErrSaveOrderCommandIsNotConstructed = errors.New(
	"SaveOrderCommand must be created via NewSaveOrderCommand constructor",
)

// LineSpec carries one requested order line. The unit price is supplied by
// the caller as a snapshot of the product's price at order time; the product
// itself must still exist when the order is saved.
type LineSpec struct {
	ProductID kernel.UUID
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// SaveOrderCommand represents a request to create or overwrite an order.
//
// When lines are supplied they replace the order's lines wholesale and the
// order total is recomputed from them, overriding the caller's total. A save
// without lines keeps the caller-supplied total untouched.
type SaveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	total      decimal.Decimal
	lines      []LineSpec

	guard guard.ConstructorGuard
}

// NewSaveOrderCommand creates a command to save an order. Lines may be empty.
func NewSaveOrderCommand(orderID, customerID kernel.UUID, total decimal.Decimal, lines []LineSpec) (SaveOrderCommand, error) {
	cmd := SaveOrderCommand{
		total: total,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
	); err != nil {
		return SaveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveOrderCommand) Validate() error {
	return c.guard.Validate(ErrSaveOrderCommandIsNotConstructed)
}

// OrderID returns the order's identifier.
func (c SaveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer placing the order.
func (c SaveOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Total returns the caller-supplied order total.
func (c SaveOrderCommand) Total() decimal.Decimal {
	return c.total
}

// Lines returns a copy of the requested order lines.
func (c SaveOrderCommand) Lines() []LineSpec {
	lines := make([]LineSpec, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *SaveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SaveOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *SaveOrderCommand) setLines(lines []LineSpec) error {
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("lines.productID", err)
		}
		if !line.Quantity.IsPositive() {
			return errs.NewValueIsInvalidError("lines.quantity")
		}
		if !line.UnitPrice.IsPositive() {
			return errs.NewValueIsInvalidError("lines.unitPrice")
		}
	}
	c.lines = make([]LineSpec, len(lines))
	copy(c.lines, lines)
	return nil
}
