// Package productrepo provides data transfer objects and mapping functions
// for product persistence.
package productrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"not null"`
	Unit      string          `gorm:"not null"`
	SalePrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Unit:      aggregate.Unit(),
		SalePrice: aggregate.SalePrice(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, dto.Name, dto.Unit, dto.SalePrice)
}
