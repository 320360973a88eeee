package queries

import (
	"errors"
	"time"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/guard"
)

var ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
	"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
)

// GetRestaurantOrdersQuery retrieves the orders of a restaurant, optionally
// filtered by status and a creation-date window. This is the restaurant
// owner's order board.
//
// Example:
//
//	query, err := NewGetRestaurantOrdersQuery(restaurantID, "in process", nil, nil)
//	if err != nil {
//	    return fmt.Errorf("bad filter: %w", err)
//	}
//	orders, err := handler.Handle(ctx, query)
type GetRestaurantOrdersQuery struct {
	restaurantID kernel.ID
	status       *order.Status
	from         *time.Time
	to           *time.Time

	guard guard.ConstructorGuard
}

// NewGetRestaurantOrdersQuery creates a query for a restaurant's orders.
// statusFilter accepts "pending", "in process", "sent", "delivered" or empty
// for no status filter. from and to bound createdAt inclusively; to covers
// the whole named day.
func NewGetRestaurantOrdersQuery(
	restaurantID kernel.ID,
	statusFilter string,
	from *time.Time,
	to *time.Time,
) (GetRestaurantOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}

	query := GetRestaurantOrdersQuery{
		restaurantID: restaurantID,
		from:         from,
		to:           to,
		guard:        guard.NewConstructorGuard(),
	}

	if statusFilter != "" {
		status, err := order.ParseStatus(statusFilter)
		if err != nil {
			return GetRestaurantOrdersQuery{}, err
		}
		query.status = &status
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are requested.
func (q GetRestaurantOrdersQuery) RestaurantID() kernel.ID {
	return q.restaurantID
}

// Status returns the parsed status filter, nil when absent.
func (q GetRestaurantOrdersQuery) Status() *order.Status {
	return q.status
}

// From returns the inclusive lower createdAt bound, nil when absent.
func (q GetRestaurantOrdersQuery) From() *time.Time {
	return q.from
}

// To returns the inclusive upper createdAt day, nil when absent.
func (q GetRestaurantOrdersQuery) To() *time.Time {
	return q.to
}

// GetRestaurantOrdersQueryResponse represents one order on the restaurant's
// order board, lines included.
type GetRestaurantOrdersQueryResponse struct {
	ID           int64
	CustomerID   int64
	Address      string
	Price        float64
	ShippingCost float64
	Status       string
	CreatedAt    time.Time
	StartedAt    *time.Time
	SentAt       *time.Time
	DeliveredAt  *time.Time
	Lines        []OrderLineResponse
}
