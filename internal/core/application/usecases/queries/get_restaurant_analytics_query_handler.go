package queries

import (
	"context"
	"time"

	"deliverus/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRestaurantAnalyticsQueryHandler computes the owner dashboard metrics of
// one restaurant in a single aggregate query: yesterday's order count, the
// current pending count, today's delivered count and today's invoiced total.
type GetRestaurantAnalyticsQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGetRestaurantAnalyticsQueryHandler creates a handler for restaurant analytics.
// Requires a GORM database connection for query execution.
func NewGetRestaurantAnalyticsQueryHandler(db *gorm.DB) GetRestaurantAnalyticsQueryHandler {
	return GetRestaurantAnalyticsQueryHandler{db: db, now: time.Now}
}

// Handle executes the query.
// Day windows are half-open calendar days in the server's local time zone:
// "yesterday" and "today" count orders by createdAt, "delivered today" by
// deliveredAt, and "invoiced today" sums price over orders created today,
// whatever their current status.
func (h GetRestaurantAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantAnalyticsQuery,
) (*GetRestaurantAnalyticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	tomorrowStart := todayStart.AddDate(0, 0, 1)

	resp := GetRestaurantAnalyticsQueryResponse{
		RestaurantID: query.RestaurantID().Int64(),
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE created_at >= ? AND created_at < ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE delivered_at >= ? AND delivered_at < ?),
			COALESCE(SUM(price) FILTER (WHERE created_at >= ? AND created_at < ?), 0)
		FROM orders
		WHERE restaurant_id = ?
	`,
		yesterdayStart, todayStart,
		int(order.Pending),
		todayStart, tomorrowStart,
		todayStart, tomorrowStart,
		query.RestaurantID().Int64(),
	).Row()

	err := row.Scan(
		&resp.NumYesterdayOrders,
		&resp.NumPendingOrders,
		&resp.NumDeliveredTodayOrders,
		&resp.InvoicedToday,
	)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
