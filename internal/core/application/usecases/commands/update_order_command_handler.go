package commands

import (
	"context"

	"deliverus/internal/core/application/validation"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/core/domain/services"
)

// UpdateOrderCommandHandler orchestrates the edit of a pending order.
// The edit is a full replacement: the previous line set is discarded, the new
// lines are validated and repriced against the catalog, and the header and
// lines are written atomically.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	pricer     services.OrderPricer
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewOrderPricer(),
	}
}

// Handle processes the order edit command.
/// Only pending orders can be edited, and the restaurant cannot change: the
// replacement lines are validated against the existing order's restaurant.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, command UpdateOrderCommand) (*order.Order, error) {
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
	productRepo := uow.ProductRepository()

	editedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = validation.RunAll(ctx,
		validation.RestaurantImmutable{RestaurantSupplied: command.RestaurantSupplied()},
		validation.OrderIsPending{Order: editedOrder},
		validation.LinesNotEmpty{Lines: command.Lines()},
		validation.LinesWellFormed{Lines: command.Lines()},
		validation.ProductsExist{Products: productRepo, Lines: command.Lines()},
		validation.ProductsAvailable{Products: productRepo, Lines: command.Lines()},
		validation.ProductsBelongToRestaurant{
			Products:     productRepo,
			Lines:        command.Lines(),
			RestaurantID: editedOrder.RestaurantID(),
		},
	); err != nil {
		return nil, err
	}

	lines, err := resolveLines(ctx, productRepo, command.Lines())
	if err != nil {
		return nil, err
	}

	targetRestaurant, err := uow.RestaurantRepository().Get(ctx, editedOrder.RestaurantID())
	if err != nil {
		return nil, err
	}

	quote := h.pricer.Quote(lines, targetRestaurant.ShippingCost())
	if err = editedOrder.Replace(lines, command.Address(), quote.Total, quote.ShippingCost); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, editedOrder); err != nil {
		return nil, err
	}

	if err = orderRepo.ReplaceLines(ctx, editedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return editedOrder, nil
}
