package orderrepo

import (
	"context"
	"database/sql"
	"errors"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with all its lines and assigns the generated
// identifier back to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AssignID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the header of an existing order: address, pricing, status and
// lifecycle timestamps. Lines are managed through ReplaceLines.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"address":       dto.Address,
		"price":         dto.Price,
		"shipping_cost": dto.ShippingCost,
		"status":        dto.Status,
		"started_at":    dto.StartedAt,
		"sent_at":       dto.SentAt,
		"delivered_at":  dto.DeliveredAt,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ReplaceLines deletes every stored line of the order and inserts the
// aggregate's current line set.
func (r *GormOrderRepository) ReplaceLines(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", aggregate.ID().Int64()).Delete(&OrderLineDTO{}).Error; err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := db.Create(&dto.Lines).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order; the cascade removes its lines.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// AverageServiceMinutes computes the mean creation-to-delivery time in
// minutes over a restaurant's delivered orders. Returns false when the
// restaurant has none.
func (r *GormOrderRepository) AverageServiceMinutes(
	ctx context.Context,
	restaurantID kernel.ID,
) (float64, bool, error) {
	if err := restaurantID.Validate(); err != nil {
		return 0, false, err
	}

	var average sql.NullFloat64
	err := r.db.WithContext(ctx).Raw(`
		SELECT AVG(EXTRACT(EPOCH FROM (delivered_at - created_at)) / 60)
		FROM orders
		WHERE restaurant_id = ? AND status = ?
	`, restaurantID.Int64(), int(order.Delivered)).Row().Scan(&average)
	if err != nil {
		return 0, false, err
	}

	if !average.Valid {
		return 0, false, nil
	}
	return average.Float64, true, nil
}

// RestaurantIDsWithDeliveredOrders lists the restaurants with at least one
// delivered order.
func (r *GormOrderRepository) RestaurantIDsWithDeliveredOrders(ctx context.Context) ([]kernel.ID, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT restaurant_id
		FROM orders
		WHERE status = ?
		ORDER BY restaurant_id
	`, int(order.Delivered)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]kernel.ID, 0)
	for rows.Next() {
		var raw int64
		if err = rows.Scan(&raw); err != nil {
			return nil, err
		}

		id, idErr := kernel.NewID(raw)
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
