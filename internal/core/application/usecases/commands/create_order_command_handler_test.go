package commands_test

import (
	"errors"
	"testing"

	"deliverus/internal/core/application/usecases/commands"
	"deliverus/internal/core/application/validation"
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/core/domain/model/product"
	"deliverus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustCreateCommand(t *testing.T, quantity int) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		mustID(t, 1),
		2,
		[]validation.LineInput{{ProductID: 10, Quantity: quantity}},
		"Main St 1",
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := mustCreateCommand(t, 2)

	catalog := map[kernel.ID]*product.Product{mustID(t, 10): mustProduct(t, 10, 2, 4.0)}

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("RestaurantRepository").Return(restaurantRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	restaurantRepo.On("Get", ctx, mustID(t, 2)).Return(mustRestaurant(t, 2, 2.5), nil).Times(2)
	productRepo.On("GetBatch", ctx, mock.Anything).Return(catalog, nil)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	placed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)

	// subtotal 8.0 stays under the free-shipping threshold
	assert.InDelta(t, 2.5, placed.ShippingCost(), 0.0001)
	assert.InDelta(t, 10.5, placed.Price(), 0.0001)
	assert.Equal(t, order.Pending, placed.Status())
	assert.Nil(t, placed.StartedAt())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_FreeShippingOverThreshold(t *testing.T) {
	ctx := t.Context()
	cmd := mustCreateCommand(t, 3)

	catalog := map[kernel.ID]*product.Product{mustID(t, 10): mustProduct(t, 10, 2, 4.0)}

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("RestaurantRepository").Return(restaurantRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	restaurantRepo.On("Get", ctx, mustID(t, 2)).Return(mustRestaurant(t, 2, 2.5), nil)
	productRepo.On("GetBatch", ctx, mock.Anything).Return(catalog, nil)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	placed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.InDelta(t, 0.0, placed.ShippingCost(), 0.0001)
	assert.InDelta(t, 12.0, placed.Price(), 0.0001)
}

func TestCreateOrderCommandHandler_Handle_ValidationFailuresCollected(t *testing.T) {
	ctx := t.Context()

	// restaurant missing and product of another restaurant: both reported
	cmd := mustCreateCommand(t, 2)
	catalog := map[kernel.ID]*product.Product{mustID(t, 10): mustProduct(t, 10, 3, 4.0)}

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("RestaurantRepository").Return(restaurantRepo).Once()
	restaurantRepo.On("Get", ctx, mustID(t, 2)).
		Return(nil, errs.NewObjectNotFoundError("restaurantId", "2")).Once()
	productRepo.On("GetBatch", ctx, mock.Anything).Return(catalog, nil)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	placed, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.Nil(t, placed)
	require.ErrorIs(t, err, errs.ErrValidationFailed)

	var vErr *errs.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Failures, 2)

	orderRepo.AssertNotCalled(t, "Add")
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	ctx := t.Context()

	factory := new(MockUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory)

	_, err := handler.Handle(ctx, commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := mustCreateCommand(t, 2)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := mustCreateCommand(t, 2)

	catalog := map[kernel.ID]*product.Product{mustID(t, 10): mustProduct(t, 10, 2, 4.0)}

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("RestaurantRepository").Return(restaurantRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	restaurantRepo.On("Get", ctx, mustID(t, 2)).Return(mustRestaurant(t, 2, 2.5), nil)
	productRepo.On("GetBatch", ctx, mock.Anything).Return(catalog, nil)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Return(errors.New("insert error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "insert error")
	uow.AssertNotCalled(t, "Commit")
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := mustCreateCommand(t, 2)

	catalog := map[kernel.ID]*product.Product{mustID(t, 10): mustProduct(t, 10, 2, 4.0)}

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("RestaurantRepository").Return(restaurantRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	restaurantRepo.On("Get", ctx, mustID(t, 2)).Return(mustRestaurant(t, 2, 2.5), nil)
	productRepo.On("GetBatch", ctx, mock.Anything).Return(catalog, nil)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
}
