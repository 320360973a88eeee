package commands

import (
	"context"
	"time"

	"deliverus/internal/core/application/validation"
	"deliverus/internal/core/domain/model/order"
)

// ConfirmOrderCommandHandler advances a pending order to started,
// stamping startedAt exactly once.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
// Confirming a non-pending order fails with the full list of violated rules;
// repeating the transition is rejected, never silently absorbed.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, command ConfirmOrderCommand) (*order.Order, error) {
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

	confirmedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = validation.RunAll(ctx,
		validation.OrderIsPending{Order: confirmedOrder},
	); err != nil {
		return nil, err
	}

	if err = confirmedOrder.Confirm(time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, confirmedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return confirmedOrder, nil
}
