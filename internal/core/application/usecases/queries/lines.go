// Package queries contains read-only operations for retrieving order state.
// Implements the Query side of the CQRS architecture: handlers bypass the
// domain model and read projections straight from the database.
package queries

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// OrderLineResponse represents one line of an order with its product info,
// as shared by every order query response.
type OrderLineResponse struct {
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   float64
}

// loadOrderLines fetches the lines of the given orders in one query and
// groups them by order id. Orders without lines get no map entry.
func loadOrderLines(ctx context.Context, db *gorm.DB, orderIDs []int64) (map[int64][]OrderLineResponse, error) {
	lines := make(map[int64][]OrderLineResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return lines, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			l.order_id,
			l.product_id,
			p.name,
			l.quantity,
			l.unit_price
		FROM order_lines l
		JOIN products p ON p.id = l.product_id
		WHERE l.order_id IN ?
		ORDER BY l.order_id, l.id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int64
		var line OrderLineResponse

		if err = rows.Scan(&orderID, &line.ProductID, &line.ProductName, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, err
		}

		lines[orderID] = append(lines[orderID], line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func nullableTime(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time
	return &t
}
