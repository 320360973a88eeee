package commands

import (
	"context"
	"time"

	"deliverus/internal/core/application/validation"
	"deliverus/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler advances a sent order to delivered and
// recomputes the restaurant's average service time in the same transaction,
// so the aggregate and the derived metric never drift apart.
type DeliverOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
// Requires a DeliveryUoWFactory for coordinating transactional updates across repositories.
func NewDeliverOrderCommandHandler(uowFactory DeliveryUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery command.
// Stamps deliveredAt, then recomputes the restaurant's average service
// minutes over all its delivered orders, the just-delivered one included.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, command DeliverOrderCommand) (*order.Order, error) {
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
	restaurantRepo := uow.RestaurantRepository()

	deliveredOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = validation.RunAll(ctx,
		validation.OrderCanBeDelivered{Order: deliveredOrder},
	); err != nil {
		return nil, err
	}

	if err = deliveredOrder.Deliver(time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, deliveredOrder); err != nil {
		return nil, err
	}

	averageMinutes, ok, err := orderRepo.AverageServiceMinutes(ctx, deliveredOrder.RestaurantID())
	if err != nil {
		return nil, err
	}

	if ok {
		servedRestaurant, restErr := restaurantRepo.Get(ctx, deliveredOrder.RestaurantID())
		if restErr != nil {
			return nil, restErr
		}

		if restErr = servedRestaurant.RecordServiceTime(averageMinutes); restErr != nil {
			return nil, restErr
		}

		if restErr = restaurantRepo.Update(ctx, servedRestaurant); restErr != nil {
			return nil, restErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return deliveredOrder, nil
}
