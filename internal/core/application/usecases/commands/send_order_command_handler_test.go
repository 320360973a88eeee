package commands_test

import (
	"testing"

	"deliverus/internal/core/application/usecases/commands"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSendOrderCommand(mustID(t, 5))
	require.NoError(t, err)

	started := storedOrder(t, 5, order.Started)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, mustID(t, 5)).Return(started, nil).Once(),
		orderRepo.On("Update", ctx, started).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSendOrderCommandHandler(factory)
	sent, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Sent, sent.Status())
	assert.NotNil(t, sent.SentAt())
	assert.Nil(t, sent.DeliveredAt())
}

func TestSendOrderCommandHandler_Handle_PendingOrderRejected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSendOrderCommand(mustID(t, 5))
	require.NoError(t, err)

	pending := storedOrder(t, 5, order.Pending)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, mustID(t, 5)).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSendOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValidationFailed)
	assert.Contains(t, err.Error(), "not started")
	orderRepo.AssertNotCalled(t, "Update")
}

func TestSendOrderCommandHandler_Handle_AlreadySentRejected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSendOrderCommand(mustID(t, 5))
	require.NoError(t, err)

	alreadySent := storedOrder(t, 5, order.Sent)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, mustID(t, 5)).Return(alreadySent, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSendOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValidationFailed)
	assert.Contains(t, err.Error(), "already been sent")
}
