package commands

import (
	"context"
	"time"

	"deliverus/internal/core/application/validation"
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/core/domain/services"
	"deliverus/internal/core/ports"
	"deliverus/internal/pkg/errs"
)

// CreateOrderCommandHandler orchestrates order placement. Validates the
// request against the catalog, prices the lines with the unit prices captured
// at this moment, and persists the order header and all its lines as one
// atomic unit.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
//	var vErr *errs.ValidationError
//	switch {
//	case errors.As(err, &vErr):
//	    log.Printf("Rejected: %v", vErr.Messages())
//	case err != nil:
//	    log.Printf("Placement failed: %v", err)
//	default:
//	    log.Printf("Order %s placed", placed.ID())
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	pricer     services.OrderPricer
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewOrderPricer(),
	}
}

// Handle processes the order placement command.
// Every check runs before anything is written; a failing check aborts with the
// complete failure list. Returns the placed order with its store-assigned id.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (*order.Order, error) {
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

	productRepo := uow.ProductRepository()
	restaurantRepo := uow.RestaurantRepository()

	if err := validation.RunAll(ctx,
		validation.RestaurantExists{Restaurants: restaurantRepo, RestaurantID: command.RestaurantID()},
		validation.LinesNotEmpty{Lines: command.Lines()},
		validation.LinesWellFormed{Lines: command.Lines()},
		validation.ProductsExist{Products: productRepo, Lines: command.Lines()},
		validation.ProductsAvailable{Products: productRepo, Lines: command.Lines()},
		validation.ProductsBelongToRestaurant{
			Products:     productRepo,
			Lines:        command.Lines(),
			RestaurantID: kernel.ID(command.RestaurantID()),
		},
	); err != nil {
		return nil, err
	}

	restaurantID, err := kernel.NewID(command.RestaurantID())
	if err != nil {
		return nil, err
	}

	lines, err := resolveLines(ctx, productRepo, command.Lines())
	if err != nil {
		return nil, err
	}

	targetRestaurant, err := restaurantRepo.Get(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	quote := h.pricer.Quote(lines, targetRestaurant.ShippingCost())
	placedOrder, err := order.NewOrder(
		command.CustomerID(),
		restaurantID,
		command.Address(),
		lines,
		quote.Total,
		quote.ShippingCost,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placedOrder, nil
}

// resolveLines converts raw request lines into domain lines, capturing the
// current unit price of each product.
func resolveLines(
	ctx context.Context,
	products ports.ProductRepository,
	inputs []validation.LineInput,
) ([]order.Line, error) {
	ids := make([]kernel.ID, 0, len(inputs))
	for _, input := range inputs {
		id, err := kernel.NewID(input.ProductID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	catalog, err := products.GetBatch(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(inputs))
	for i, input := range inputs {
		resolved, ok := catalog[ids[i]]
		if !ok {
			return nil, errs.NewObjectNotFoundError("productId", ids[i].String())
		}

		line, lineErr := order.NewLine(ids[i], input.Quantity, resolved.Price())
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return lines, nil
}
