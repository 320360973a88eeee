// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The identifier is database-assigned; lines live in their own table and are
// removed with the order through the cascade.
type OrderDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	CustomerID   int64 `gorm:"index"`
	RestaurantID int64 `gorm:"index"`
	Address      string
	Price        float64
	ShippingCost float64
	Status       int `gorm:"index"`
	CreatedAt    time.Time
	StartedAt    *time.Time
	SentAt       *time.Time
	DeliveredAt  *time.Time

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one persisted order line with the unit price
// captured at order time.
type OrderLineDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"index"`
	ProductID int64 `gorm:"index"`
	Quantity  int
	UnitPrice float64
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation,
// lines included.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   aggregate.ID().Int64(),
			ProductID: line.ProductID().Int64(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Int64(),
		CustomerID:   aggregate.CustomerID().Int64(),
		RestaurantID: aggregate.RestaurantID().Int64(),
		Address:      aggregate.Address(),
		Price:        aggregate.Price(),
		ShippingCost: aggregate.ShippingCost(),
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
		StartedAt:    aggregate.StartedAt(),
		SentAt:       aggregate.SentAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		Lines:        lines,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// which re-validates status against the lifecycle timestamps.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.NewID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.NewID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := kernel.NewID(lineDTO.ProductID)
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(productID, lineDTO.Quantity, lineDTO.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		dto.Address,
		lines,
		dto.Price,
		dto.ShippingCost,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.StartedAt,
		dto.SentAt,
		dto.DeliveredAt,
	)
}
