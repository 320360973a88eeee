package commands

import (
	"context"

	"deliverus/internal/core/application/validation"
)

// DeleteOrderCommandHandler orchestrates the cancellation of a pending order.
// The order row and all its lines are removed together.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order cancellation.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Only pending orders can be cancelled; a started order is past the point of
// no return for the customer.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, command DeleteOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	cancelledOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = validation.RunAll(ctx,
		validation.OrderIsPending{Order: cancelledOrder},
	); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, cancelledOrder.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
