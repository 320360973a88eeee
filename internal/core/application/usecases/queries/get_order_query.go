package queries

import (
	"errors"
	"time"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its restaurant, customer and product
// detail.
type GetOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.ID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// CustomerResponse represents the customer detail nested in the order view.
// Identity rows are provisioned by the platform's user service; name and
// email stay empty when the row is not present in this database.
type CustomerResponse struct {
	ID    int64
	Name  string
	Email string
}

// GetOrderQueryResponse represents the full detail view of one order.
type GetOrderQueryResponse struct {
	ID           int64
	Address      string
	Price        float64
	ShippingCost float64
	Status       string
	CreatedAt    time.Time
	StartedAt    *time.Time
	SentAt       *time.Time
	DeliveredAt  *time.Time
	Restaurant   RestaurantResponse
	Customer     CustomerResponse
	Lines        []OrderLineResponse
}
