package queries

import (
	"context"
	"database/sql"

	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its restaurant, customer and
// product detail.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. A missing order is reported with
// errs.ErrObjectNotFound.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*GetOrderQueryResponse, error) {
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
			COALESCE(c.name, ''),
			o.customer_id,
			COALESCE(u.name, ''),
			COALESCE(u.email, '')
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		LEFT JOIN restaurant_categories c ON c.id = r.restaurant_category_id
		LEFT JOIN users u ON u.id = o.customer_id
		WHERE o.id = ?
	`, query.OrderID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	var resp GetOrderQueryResponse
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
		&resp.Customer.ID,
		&resp.Customer.Name,
		&resp.Customer.Email,
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

	lines, err := loadOrderLines(ctx, h.db, []int64{resp.ID})
	if err != nil {
		return nil, err
	}
	resp.Lines = lines[resp.ID]

	return &resp, nil
}
