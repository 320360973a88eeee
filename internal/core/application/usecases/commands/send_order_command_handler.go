package commands

import (
	"context"
	"time"

	"deliverus/internal/core/application/validation"
	"deliverus/internal/core/domain/model/order"
)

// SendOrderCommandHandler advances a started order to sent,
// stamping sentAt exactly once.
type SendOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSendOrderCommandHandler creates a handler for order dispatch.
func NewSendOrderCommandHandler(uowFactory OrderUoWFactory) SendOrderCommandHandler {
	return SendOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
func (h SendOrderCommandHandler) Handle(ctx context.Context, command SendOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	sentOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = validation.RunAll(ctx,
		validation.OrderCanBeSent{Order: sentOrder},
	); err != nil {
		return nil, err
	}

	if err = sentOrder.Send(time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, sentOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return sentOrder, nil
}
