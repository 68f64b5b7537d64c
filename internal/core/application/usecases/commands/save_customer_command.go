package commands

import (
	"errors"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/errs"
	"verduleria/internal/pkg/guard"
)

var ErrSaveCustomerCommandIsNotConstructed = errors.New(
	"SaveCustomerCommand must be created via NewSaveCustomerCommand constructor",
)

// SaveCustomerCommand represents a request to create or overwrite a customer.
// Field validation beyond the required-field checks happens at the transport
// boundary; the command receives already-validated input.
type SaveCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	businessName string
	phone        string
	address      string
	email        string
	taxID        string

	guard guard.ConstructorGuard
}

// NewSaveCustomerCommand creates a command to save a customer.
// The business name, address, and tax id are required.
func NewSaveCustomerCommand(customerID kernel.UUID, businessName, phone, address, email, taxID string) (SaveCustomerCommand, error) {
	cmd := SaveCustomerCommand{
		phone: phone,
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setBusinessName(businessName),
		cmd.setAddress(address),
		cmd.setTaxID(taxID),
	); err != nil {
		return SaveCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveCustomerCommand) Validate() error {
	return c.guard.Validate(ErrSaveCustomerCommandIsNotConstructed)
}

// CustomerID returns the customer's identifier.
func (c SaveCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// BusinessName returns the customer's legal or display name.
func (c SaveCustomerCommand) BusinessName() string {
	return c.businessName
}

// Phone returns the customer's contact phone number.
func (c SaveCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer's delivery address.
func (c SaveCustomerCommand) Address() string {
	return c.address
}

// Email returns the customer's contact email.
func (c SaveCustomerCommand) Email() string {
	return c.email
}

// TaxID returns the customer's tax identifier.
func (c SaveCustomerCommand) TaxID() string {
	return c.taxID
}

func (c *SaveCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *SaveCustomerCommand) setBusinessName(businessName string) error {
	if businessName == "" {
		return errs.NewValueIsRequiredError("businessName")
	}
	c.businessName = businessName
	return nil
}

func (c *SaveCustomerCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *SaveCustomerCommand) setTaxID(taxID string) error {
	if taxID == "" {
		return errs.NewValueIsRequiredError("taxID")
	}
	c.taxID = taxID
	return nil
}
