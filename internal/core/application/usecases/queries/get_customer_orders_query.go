package queries

import (
	"errors"
	"time"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves the full order history of a customer,
// newest first, with the restaurant and product detail needed to render it.
type GetCustomerOrdersQuery struct {
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
func NewGetCustomerOrdersQuery(customerID kernel.ID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose history is requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.ID {
	return q.customerID
}

// RestaurantResponse represents the restaurant detail nested in an order
// history entry.
type RestaurantResponse struct {
	ID                    int64
	Name                  string
	ShippingCost          float64
	AverageServiceMinutes *float64
	CategoryName          string
}

// GetCustomerOrdersQueryResponse represents one entry of a customer's order
// history.
type GetCustomerOrdersQueryResponse struct {
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
	Lines        []OrderLineResponse
}
