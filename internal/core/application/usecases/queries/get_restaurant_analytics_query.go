package queries

import (
	"errors"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/guard"
)

var ErrGetRestaurantAnalyticsQueryIsNotConstructed = errors.New(
	"GetRestaurantAnalyticsQuery must be created via NewGetRestaurantAnalyticsQuery constructor",
)

// GetRestaurantAnalyticsQuery retrieves the owner dashboard metrics of one
// restaurant.
type GetRestaurantAnalyticsQuery struct {
	restaurantID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetRestaurantAnalyticsQuery creates a query for a restaurant's dashboard metrics.
func NewGetRestaurantAnalyticsQuery(restaurantID kernel.ID) (GetRestaurantAnalyticsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantAnalyticsQuery{}, err
	}

	return GetRestaurantAnalyticsQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantAnalyticsQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose metrics are requested.
func (q GetRestaurantAnalyticsQuery) RestaurantID() kernel.ID {
	return q.restaurantID
}

// GetRestaurantAnalyticsQueryResponse represents the owner dashboard metrics.
// A restaurant without orders gets all zeros, never an error.
type GetRestaurantAnalyticsQueryResponse struct {
	RestaurantID            int64
	NumYesterdayOrders      int64
	NumPendingOrders        int64
	NumDeliveredTodayOrders int64
	InvoicedToday           float64
}
