package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"deliverus/internal/adapters/out/postgres/orderrepo"
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_lines").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) mustID(value int64) kernel.ID {
	id, err := kernel.NewID(value)
	suite.Require().NoError(err)
	return id
}

func (suite *OrderRepositoryIntegrationTestSuite) newPendingOrder() *order.Order {
	line, err := order.NewLine(suite.mustID(10), 2, 4.0)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		suite.mustID(1),
		suite.mustID(2),
		"Main St 1",
		[]order.Line{line},
		10.5,
		2.5,
		time.Now(),
	)
	suite.Require().NoError(err)
	return o
}

// insertDeliveredOrder writes a delivered order row directly, with the given
// service time, bypassing the aggregate. Used to set up the metric queries.
func (suite *OrderRepositoryIntegrationTestSuite) insertDeliveredOrder(
	restaurantID int64,
	serviceMinutes float64,
) {
	createdAt := time.Now().Add(-4 * time.Hour)
	startedAt := createdAt.Add(5 * time.Minute)
	sentAt := createdAt.Add(10 * time.Minute)
	deliveredAt := createdAt.Add(time.Duration(serviceMinutes * float64(time.Minute)))

	dto := orderrepo.OrderDTO{
		CustomerID:   1,
		RestaurantID: restaurantID,
		Address:      "Main St 1",
		Price:        10.5,
		ShippingCost: 2.5,
		Status:       int(order.Delivered),
		CreatedAt:    createdAt,
		StartedAt:    &startedAt,
		SentAt:       &sentAt,
		DeliveredAt:  &deliveredAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsStoreID() {
	ctx := context.Background()
	testOrder := suite.newPendingOrder()

	suite.True(testOrder.ID().IsZero())

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.False(testOrder.ID().IsZero())

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	var lineCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderLineDTO{}).Count(&lineCount).Error)
	suite.Equal(int64(1), lineCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsAggregate() {
	ctx := context.Background()
	testOrder := suite.newPendingOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), loaded.ID())
	suite.Equal(testOrder.CustomerID(), loaded.CustomerID())
	suite.Equal(testOrder.RestaurantID(), loaded.RestaurantID())
	suite.Equal("Main St 1", loaded.Address())
	suite.InDelta(10.5, loaded.Price(), 0.0001)
	suite.InDelta(2.5, loaded.ShippingCost(), 0.0001)
	suite.Equal(order.Pending, loaded.Status())
	suite.Require().Len(loaded.Lines(), 1)
	suite.Equal(suite.mustID(10), loaded.Lines()[0].ProductID())
	suite.Equal(2, loaded.Lines()[0].Quantity())
	suite.InDelta(4.0, loaded.Lines()[0].UnitPrice(), 0.0001)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingOrder_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, suite.mustID(12345))

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycleTransition() {
	ctx := context.Background()
	testOrder := suite.newPendingOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Confirm(time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Started, loaded.Status())
	suite.NotNil(loaded.StartedAt())
	suite.Nil(loaded.SentAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_ReturnsError() {
	ctx := context.Background()
	testOrder := suite.newPendingOrder()
	suite.Require().NoError(testOrder.AssignID(suite.mustID(9999)))

	err := suite.repository.Update(ctx, testOrder)

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestReplaceLines_SwapsFullLineSet() {
	ctx := context.Background()
	testOrder := suite.newPendingOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	newLine1, err := order.NewLine(suite.mustID(11), 1, 3.0)
	suite.Require().NoError(err)
	newLine2, err := order.NewLine(suite.mustID(12), 4, 1.5)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Replace([]order.Line{newLine1, newLine2}, "Elm St 9", 11.5, 2.5))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	suite.Require().NoError(suite.repository.ReplaceLines(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("Elm St 9", loaded.Address())
	suite.Require().Len(loaded.Lines(), 2)
	suite.Equal(suite.mustID(11), loaded.Lines()[0].ProductID())
	suite.Equal(suite.mustID(12), loaded.Lines()[1].ProductID())

	var lineCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderLineDTO{}).Count(&lineCount).Error)
	suite.Equal(int64(2), lineCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_CascadesToLines() {
	ctx := context.Background()
	testOrder := suite.newPendingOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))

	_, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var lineCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderLineDTO{}).Count(&lineCount).Error)
	suite.Equal(int64(0), lineCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_MissingOrder_ReturnsNotFound() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, suite.mustID(12345))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAverageServiceMinutes_AveragesDeliveredOrders() {
	ctx := context.Background()

	suite.insertDeliveredOrder(2, 30)
	suite.insertDeliveredOrder(2, 60)
	suite.insertDeliveredOrder(3, 90)

	average, ok, err := suite.repository.AverageServiceMinutes(ctx, suite.mustID(2))
	suite.Require().NoError(err)
	suite.True(ok)
	suite.InDelta(45.0, average, 0.01)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAverageServiceMinutes_NoDeliveries_ReturnsFalse() {
	ctx := context.Background()

	// a pending order must not count towards the metric
	suite.Require().NoError(suite.repository.Add(ctx, suite.newPendingOrder()))

	_, ok, err := suite.repository.AverageServiceMinutes(ctx, suite.mustID(2))
	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRestaurantIDsWithDeliveredOrders() {
	ctx := context.Background()

	suite.insertDeliveredOrder(3, 30)
	suite.insertDeliveredOrder(2, 30)
	suite.insertDeliveredOrder(2, 60)
	suite.Require().NoError(suite.repository.Add(ctx, suite.newPendingOrder()))

	ids, err := suite.repository.RestaurantIDsWithDeliveredOrders(ctx)
	suite.Require().NoError(err)
	suite.Equal([]kernel.ID{suite.mustID(2), suite.mustID(3)}, ids)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
