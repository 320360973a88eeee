package commands

import (
	"context"
)

// RefreshServiceTimesCommandHandler recomputes the average service time of
// every restaurant that has delivered at least one order. The on-delivery
// update keeps the metric current; this handler reconciles restaurants whose
// rows predate it or drifted through manual data fixes.
type RefreshServiceTimesCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewRefreshServiceTimesCommandHandler creates a handler for service-time reconciliation.
func NewRefreshServiceTimesCommandHandler(uowFactory DeliveryUoWFactory) RefreshServiceTimesCommandHandler {
	return RefreshServiceTimesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
// All restaurant updates happen in one transaction; a failure on any
// restaurant rolls back the whole pass and the next run retries from scratch.
func (h RefreshServiceTimesCommandHandler) Handle(ctx context.Context, command RefreshServiceTimesCommand) error {
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
	restaurantRepo := uow.RestaurantRepository()

	restaurantIDs, err := orderRepo.RestaurantIDsWithDeliveredOrders(ctx)
	if err != nil {
		return err
	}

	for _, restaurantID := range restaurantIDs {
		averageMinutes, ok, avgErr := orderRepo.AverageServiceMinutes(ctx, restaurantID)
		if avgErr != nil {
			return avgErr
		}
		if !ok {
			continue
		}

		servedRestaurant, getErr := restaurantRepo.Get(ctx, restaurantID)
		if getErr != nil {
			return getErr
		}

		if recErr := servedRestaurant.RecordServiceTime(averageMinutes); recErr != nil {
			return recErr
		}

		if updErr := restaurantRepo.Update(ctx, servedRestaurant); updErr != nil {
			return updErr
		}
	}

	return uow.Commit(ctx)
}
