// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"github.com/google/uuid"

	"verduleria/internal/core/domain/model/customer"
	"verduleria/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessName string    `gorm:"not null"`
	Phone        string
	Address      string `gorm:"not null"`
	Email        string
	TaxID        string `gorm:"column:tax_id;not null"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           aggregate.ID().Bytes(),
		BusinessName: aggregate.BusinessName(),
		Phone:        aggregate.Phone(),
		Address:      aggregate.Address(),
		Email:        aggregate.Email(),
		TaxID:        aggregate.TaxID(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(id, dto.BusinessName, dto.Phone, dto.Address, dto.Email, dto.TaxID)
}
