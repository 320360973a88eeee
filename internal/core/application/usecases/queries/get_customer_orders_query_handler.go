package queries

import (
	"context"
	"database/sql"

	"deliverus/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's order history with the
// nested restaurant (category included) and product detail.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by creation time, newest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.address,
			o.price,
			o.shipping_cost,
			o.status,
			o.created_at,
			o.started_at,
			o.sent_at,
			o.delivered_at,
			r.id,
			r.name,
			r.shipping_cost,
			r.average_service_minutes,
			COALESCE(c.name, '')
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		LEFT JOIN restaurant_categories c ON c.id = r.restaurant_category_id
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC, o.id DESC
	`, query.CustomerID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetCustomerOrdersQueryResponse, 0)
	orderIDs := make([]int64, 0)

	for rows.Next() {
		var resp GetCustomerOrdersQueryResponse
		var status int
		var startedAt, sentAt, deliveredAt sql.NullTime
		var averageServiceMinutes sql.NullFloat64

		err = rows.Scan(
			&resp.ID,
			&resp.Address,
			&resp.Price,
			&resp.ShippingCost,
			&status,
			&resp.CreatedAt,
			&startedAt,
			&sentAt,
			&deliveredAt,
			&resp.Restaurant.ID,
			&resp.Restaurant.Name,
			&resp.Restaurant.ShippingCost,
			&averageServiceMinutes,
			&resp.Restaurant.CategoryName,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = order.Status(status).String()
		resp.StartedAt = nullableTime(startedAt)
		resp.SentAt = nullableTime(sentAt)
		resp.DeliveredAt = nullableTime(deliveredAt)
		if averageServiceMinutes.Valid {
			avg := averageServiceMinutes.Float64
			resp.Restaurant.AverageServiceMinutes = &avg
		}

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
