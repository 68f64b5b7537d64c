package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/errs"
	"verduleria/internal/pkg/guard"
)

var ErrSaveProductCommandIsNotConstructed = errors.New(
	"SaveProductCommand must be created via NewSaveProductCommand constructor",
)

// SaveProductCommand represents a request to create or overwrite a product.
type SaveProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	unit      string
	salePrice decimal.Decimal

	guard guard.ConstructorGuard
}

// NewSaveProductCommand creates a command to save a product.
// The name and unit are required and the sale price must be positive.
func NewSaveProductCommand(productID kernel.UUID, name, unit string, salePrice decimal.Decimal) (SaveProductCommand, error) {
	cmd := SaveProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setUnit(unit),
		cmd.setSalePrice(salePrice),
	); err != nil {
		return SaveProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveProductCommand) Validate() error {
	return c.guard.Validate(ErrSaveProductCommandIsNotConstructed)
}

// ProductID returns the product's identifier.
func (c SaveProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product's display name.
func (c SaveProductCommand) Name() string {
	return c.name
}

// Unit returns the measurement unit the product is sold in.
func (c SaveProductCommand) Unit() string {
	return c.unit
}

// SalePrice returns the product's unit sale price.
func (c SaveProductCommand) SalePrice() decimal.Decimal {
	return c.salePrice
}

func (c *SaveProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *SaveProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *SaveProductCommand) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	c.unit = unit
	return nil
}

func (c *SaveProductCommand) setSalePrice(salePrice decimal.Decimal) error {
	if !salePrice.IsPositive() {
		return errs.NewValueIsInvalidError("salePrice")
	}
	c.salePrice = salePrice
	return nil
}
