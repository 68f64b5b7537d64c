// Package product implements the Product leaf entity: something the seller
// offers, with a unit of measure and a unit sale price.
package product

import (
	"errors"
	"fmt"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product represents a sellable item. Order lines reference products by id
// and capture the price current at ordering time, so later price changes do
// not rewrite history.
type Product struct {
	id        kernel.UUID
	name      string
	unit      string
	salePrice decimal.Decimal

	isConstructed bool
}

// NewProduct creates a validated Product. Name and unit of measure are
// required; the sale price must be strictly positive.
func NewProduct(id kernel.UUID, name, unit string, salePrice decimal.Decimal) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setUnit(unit),
		p.setSalePrice(salePrice),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// Update overwrites the product's attributes, re-validating each one.
func (p *Product) Update(name, unit string, salePrice decimal.Decimal) error {
	return errors.Join(
		p.setName(name),
		p.setUnit(unit),
		p.setSalePrice(salePrice),
	)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Unit returns the unit of measure the product is sold in (kg, dozen, bunch).
func (p *Product) Unit() string {
	return p.unit
}

// SalePrice returns the current unit sale price.
func (p *Product) SalePrice() decimal.Decimal {
	return p.salePrice
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	p.unit = unit
	return nil
}

func (p *Product) setSalePrice(salePrice decimal.Decimal) error {
	if !salePrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("salePrice",
			fmt.Errorf("%s is not greater than 0", salePrice))
	}
	p.salePrice = salePrice
	return nil
}
