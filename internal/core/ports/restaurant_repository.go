package ports

import (
	"context"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for the order core's
// slice of restaurant data. Reads resolve the default shipping cost; the only
// write is the recomputed average service time.
type RestaurantRepository interface {
	// Get retrieves a restaurant by its identifier.
	Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error)

	// Update persists the restaurant's recomputed average service time.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error
}
