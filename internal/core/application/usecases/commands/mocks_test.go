package commands_test

import (
	"context"
	"testing"
	"time"

	"deliverus/internal/core/application/usecases/commands"
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/core/domain/model/product"
	"deliverus/internal/core/domain/model/restaurant"
	"deliverus/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) ReplaceLines(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) AverageServiceMinutes(
	ctx context.Context, restaurantID kernel.ID,
) (float64, bool, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

func (m *MockOrderRepository) RestaurantIDsWithDeliveredOrders(ctx context.Context) ([]kernel.ID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.ID), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetBatch(
	ctx context.Context, ids []kernel.ID,
) (map[kernel.ID]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.ID]*product.Product), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

func mustID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func mustProduct(t *testing.T, id, restaurantID int64, price float64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(mustID(t, id), mustID(t, restaurantID), "Paella", price, true)
	require.NoError(t, err)
	return p
}

func mustRestaurant(t *testing.T, id int64, shippingCost float64) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(mustID(t, id), shippingCost, nil)
	require.NoError(t, err)
	return r
}

// storedOrder builds a persisted order in the given status, with lifecycle
// timestamps consistent with it.
func storedOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()

	line, err := order.NewLine(mustID(t, 10), 2, 4.0)
	require.NoError(t, err)

	now := time.Now()
	var startedAt, sentAt, deliveredAt *time.Time
	if status >= order.Started {
		startedAt = &now
	}
	if status >= order.Sent {
		sentAt = &now
	}
	if status >= order.Delivered {
		deliveredAt = &now
	}

	o, err := order.RestoreOrder(
		mustID(t, id),
		mustID(t, 1),
		mustID(t, 2),
		"Main St 1",
		[]order.Line{line},
		10.5,
		2.5,
		status,
		now.Add(-time.Hour),
		startedAt,
		sentAt,
		deliveredAt,
	)
	require.NoError(t, err)
	return o
}
