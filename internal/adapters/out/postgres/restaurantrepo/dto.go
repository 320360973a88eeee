// Package restaurantrepo provides persistence for the order core's view of
// restaurants: the default shipping cost read by the pricing rule and the
// average service time written back after deliveries.
package restaurantrepo

import (
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/restaurant"
)

// RestaurantDTO represents the database structure of a restaurant.
// Name and category are carried for the read side; the order core itself
// only touches shipping cost and average service time.
type RestaurantDTO struct {
	ID                    int64 `gorm:"primaryKey;autoIncrement"`
	Name                  string
	ShippingCost          float64
	AverageServiceMinutes *float64
	RestaurantCategoryID  *int64 `gorm:"index"`
}

// TableName specifies the database table name for restaurants.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// RestaurantCategoryDTO represents a restaurant category, joined by the read
// side when rendering a customer's order history.
type RestaurantCategoryDTO struct {
	ID   int64 `gorm:"primaryKey;autoIncrement"`
	Name string
}

// TableName specifies the database table name for restaurant categories.
func (RestaurantCategoryDTO) TableName() string {
	return "restaurant_categories"
}

// toDomain converts a database DTO to a restaurant entity.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return restaurant.NewRestaurant(id, dto.ShippingCost, dto.AverageServiceMinutes)
}
