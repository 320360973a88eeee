package ports

import (
	"context"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its lines are persisted as one unit: Add stores the header
// with all lines, ReplaceLines swaps the full line set, Delete cascades.
type OrderRepository interface {
	// Add persists a new order aggregate with all its lines and assigns the
	// store-generated identifier to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists header changes (address, pricing, status, timestamps)
	// of an existing order aggregate. Lines are not touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// ReplaceLines deletes every stored line of the order and inserts the
	// aggregate's current line set. Used by order editing, which replaces
	// the full set rather than patching it.
	ReplaceLines(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines by identifier.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Delete removes an order and, through the cascade, all its lines.
	Delete(ctx context.Context, id kernel.ID) error

	// AverageServiceMinutes computes the mean creation-to-delivery time in
	// minutes over a restaurant's delivered orders. The second return value
	// is false when the restaurant has no delivered orders yet.
	AverageServiceMinutes(ctx context.Context, restaurantID kernel.ID) (float64, bool, error)

	// RestaurantIDsWithDeliveredOrders lists the restaurants that have at
	// least one delivered order. Used by the service-time reconciliation job.
	RestaurantIDsWithDeliveredOrders(ctx context.Context) ([]kernel.ID, error)
}
