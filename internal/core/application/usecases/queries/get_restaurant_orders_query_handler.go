package queries

import (
	"context"
	"database/sql"

	"deliverus/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler retrieves a restaurant's orders from the
// database, newest first, with optional status and creation-date filters.
type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantOrdersQueryHandler creates a handler for restaurant order queries.
// Requires a GORM database connection for query execution.
func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

// Handle executes the query.
// The date window is inclusive on both ends: the upper bound covers the whole
// named day, so an order created at 23:59 of the "to" day is still included.
func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) ([]GetRestaurantOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			customer_id,
			address,
			price,
			shipping_cost,
			status,
			created_at,
			started_at,
			sent_at,
			delivered_at
		FROM orders
		WHERE restaurant_id = ?
	`
	args := []any{query.RestaurantID().Int64()}

	if status := query.Status(); status != nil {
		sqlText += " AND status = ?"
		args = append(args, int(*status))
	}
	if from := query.From(); from != nil {
		sqlText += " AND created_at >= ?"
		args = append(args, *from)
	}
	if to := query.To(); to != nil {
		sqlText += " AND created_at < ?"
		args = append(args, to.AddDate(0, 0, 1))
	}

	sqlText += " ORDER BY created_at DESC, id DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetRestaurantOrdersQueryResponse, 0)
	orderIDs := make([]int64, 0)

	for rows.Next() {
		var resp GetRestaurantOrdersQueryResponse
		var status int
		var startedAt, sentAt, deliveredAt sql.NullTime

		err = rows.Scan(
			&resp.ID,
			&resp.CustomerID,
			&resp.Address,
			&resp.Price,
			&resp.ShippingCost,
			&status,
			&resp.CreatedAt,
			&startedAt,
			&sentAt,
			&deliveredAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = order.Status(status).String()
		resp.StartedAt = nullableTime(startedAt)
		resp.SentAt = nullableTime(sentAt)
		resp.DeliveredAt = nullableTime(deliveredAt)

		orders = append(orders, resp)
		orderIDs = append(orderIDs, resp.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	lines, err := loadOrderLines(ctx, h.db, orderIDs)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Lines = lines[orders[i].ID]
	}

	return orders, nil
}
