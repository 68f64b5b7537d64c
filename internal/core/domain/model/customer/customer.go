// Package customer implements the Customer entity: the legal party orders are
// placed for. Customers have no lifecycle beyond create/update/delete.
package customer

import (
	"errors"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer represents a buyer with a legal name, contact data, and tax identity.
//
// Invariants: the business name, delivery address, and tax id are required;
// phone and email are optional contact data.
type Customer struct {
	id           kernel.UUID
	businessName string
	phone        string
	address      string
	email        string
	taxID        string

	isConstructed bool
}

// NewCustomer creates a validated Customer.
func NewCustomer(id kernel.UUID, businessName, phone, address, email, taxID string) (*Customer, error) {
	c := &Customer{
		phone:         phone,
		email:         email,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setBusinessName(businessName),
		c.setAddress(address),
		c.setTaxID(taxID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// Update overwrites the customer's mutable attributes, re-validating the
// required ones.
func (c *Customer) Update(businessName, phone, address, email, taxID string) error {
	if err := errors.Join(
		c.setBusinessName(businessName),
		c.setAddress(address),
		c.setTaxID(taxID),
	); err != nil {
		return err
	}

	c.phone = phone
	c.email = email
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// BusinessName returns the customer's legal or display name.
func (c *Customer) BusinessName() string {
	return c.businessName
}

// Phone returns the customer's contact phone number, possibly empty.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's delivery address.
func (c *Customer) Address() string {
	return c.address
}

// Email returns the customer's contact email, possibly empty.
func (c *Customer) Email() string {
	return c.email
}

// TaxID returns the customer's tax identifier (CUIT/DNI).
func (c *Customer) TaxID() string {
	return c.taxID
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setBusinessName(businessName string) error {
	if businessName == "" {
		return errs.NewValueIsRequiredError("businessName")
	}
	c.businessName = businessName
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *Customer) setTaxID(taxID string) error {
	if taxID == "" {
		return errs.NewValueIsRequiredError("taxID")
	}
	c.taxID = taxID
	return nil
}
