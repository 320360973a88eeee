// Package productrepo provides read-only access to the product catalog.
// Products are owned by the catalog side of the platform; the order core
// reads them to validate and price orders.
package productrepo

import (
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/product"
)

// ProductDTO represents the database structure of a catalog product.
type ProductDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	RestaurantID int64 `gorm:"index"`
	Name         string
	Price        float64
	Availability bool
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// toDomain converts a database DTO to a product entity.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.NewID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, restaurantID, dto.Name, dto.Price, dto.Availability)
}
