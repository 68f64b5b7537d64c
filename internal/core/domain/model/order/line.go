package order

import (
	"errors"
	"fmt"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory method.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one product/quantity/price entry belonging to exactly one order.
// A line never exists independently of its owning order: the aggregate holds
// its lines by value and no line identity is exposed outside the order.
//
// Line invariants:
//   - Product reference must be valid
//   - Quantity must be strictly positive
//   - Unit sale price must be strictly positive
type Line struct {
	productID kernel.UUID
	quantity  decimal.Decimal
	unitPrice decimal.Decimal

	isConstructed bool
}

// NewLine creates a validated order line for the given product.
// Quantity and unit price must both be greater than zero.
func NewLine(productID kernel.UUID, quantity, unitPrice decimal.Decimal) (Line, error) {
	line := Line{isConstructed: true}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line instance was properly constructed through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced product's identifier.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() decimal.Decimal {
	return l.quantity
}

// UnitPrice returns the unit sale price captured on the line.
func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Subtotal returns quantity × unit price, or zero when either operand is
// absent (a zero-value line that bypassed construction).
func (l Line) Subtotal() decimal.Decimal {
	if l.quantity.IsZero() || l.unitPrice.IsZero() {
		return decimal.Zero
	}
	return l.quantity.Mul(l.unitPrice)
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}
