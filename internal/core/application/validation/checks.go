// Package validation provides the composable checks that gate order
// operations. Each check is an independent predicate over the request input
// and the current store state; a validation run executes every check and
// collects all failures before anything is mutated (fail closed).
package validation

import (
	"context"
	"errors"
	"fmt"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/core/ports"
	"deliverus/internal/pkg/errs"
)

// Check is a single validation predicate. Validate returns nil on success or
// an error describing the failing rule.
type Check interface {
	Validate(ctx context.Context) error
}

// RunAll executes every check independently and aggregates all failures into
// a single errs.ValidationError. Checks are not short-circuited: a client
// gets the complete list of failing rules in one response.
func RunAll(ctx context.Context, checks ...Check) error {
	var failures []error
	for _, check := range checks {
		if err := check.Validate(ctx); err != nil {
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		return errs.NewValidationError(failures)
	}
	return nil
}

// LineInput is the raw line shape of a create or edit request, before any
// resolution against the store.
type LineInput struct {
	ProductID int64
	Quantity  int
}

// RestaurantExists verifies that the request's restaurant reference is a
// positive integer resolving to an existing restaurant.
type RestaurantExists struct {
	Restaurants  ports.RestaurantRepository
	RestaurantID int64
}

func (c RestaurantExists) Validate(ctx context.Context) error {
	id, err := kernel.NewID(c.RestaurantID)
	if err != nil {
		return errors.New("restaurantId must be a positive integer")
	}

	if _, err := c.Restaurants.Get(ctx, id); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errors.New("the restaurantId does not exist")
		}
		return err
	}
	return nil
}

// RestaurantImmutable rejects edit requests that try to supply a restaurant:
// the restaurant of an order cannot change after creation.
type RestaurantImmutable struct {
	RestaurantSupplied bool
}

func (c RestaurantImmutable) Validate(_ context.Context) error {
	if c.RestaurantSupplied {
		return errors.New("restaurantId cannot be changed after creation")
	}
	return nil
}

// LinesNotEmpty verifies the order carries at least one line.
type LinesNotEmpty struct {
	Lines []LineInput
}

func (c LinesNotEmpty) Validate(_ context.Context) error {
	if len(c.Lines) == 0 {
		return errors.New("the order must contain at least one product")
	}
	return nil
}

// LinesWellFormed verifies every line references a product by positive id
// with a positive quantity.
type LinesWellFormed struct {
	Lines []LineInput
}

func (c LinesWellFormed) Validate(_ context.Context) error {
	for _, line := range c.Lines {
		if line.ProductID <= 0 {
			return errors.New("every line must reference a product by positive id")
		}
		if line.Quantity <= 0 {
			return errors.New("every line must have a quantity greater than 0")
		}
	}
	return nil
}

// ProductsExist verifies every referenced product resolves in the store.
// Non-positive product ids are skipped here; LinesWellFormed reports those.
type ProductsExist struct {
	Products ports.ProductRepository
	Lines    []LineInput
}

func (c ProductsExist) Validate(ctx context.Context) error {
	ids := resolvableIDs(c.Lines)
	if len(ids) == 0 {
		return nil
	}

	found, err := c.Products.GetBatch(ctx, ids)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("the product %s does not exist", id)
		}
	}
	return nil
}

// ProductsAvailable verifies every referenced product is currently available.
// Unresolvable products are skipped here; ProductsExist reports those.
type ProductsAvailable struct {
	Products ports.ProductRepository
	Lines    []LineInput
}

func (c ProductsAvailable) Validate(ctx context.Context) error {
	ids := resolvableIDs(c.Lines)
	if len(ids) == 0 {
		return nil
	}

	found, err := c.Products.GetBatch(ctx, ids)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if p, ok := found[id]; ok && !p.IsAvailable() {
			return errors.New("the product is not available")
		}
	}
	return nil
}

// ProductsBelongToRestaurant verifies every referenced product is owned by
// the order's restaurant. For creation the restaurant comes from the request;
// for edits it is the existing order's restaurant.
type ProductsBelongToRestaurant struct {
	Products     ports.ProductRepository
	Lines        []LineInput
	RestaurantID kernel.ID
}

func (c ProductsBelongToRestaurant) Validate(ctx context.Context) error {
	ids := resolvableIDs(c.Lines)
	if len(ids) == 0 {
		return nil
	}

	found, err := c.Products.GetBatch(ctx, ids)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if p, ok := found[id]; ok && !p.BelongsTo(c.RestaurantID) {
			return errors.New("the products belong to a different restaurant")
		}
	}
	return nil
}

// OrderIsPending verifies the order has not been started yet. Gates customer
// edits and deletes as well as the owner's confirm transition.
type OrderIsPending struct {
	Order *order.Order
}

func (c OrderIsPending) Validate(_ context.Context) error {
	if c.Order.Status() != order.Pending {
		return errors.New("the order has already been started")
	}
	return nil
}

// OrderCanBeSent verifies the order is started and not sent yet.
type OrderCanBeSent struct {
	Order *order.Order
}

func (c OrderCanBeSent) Validate(_ context.Context) error {
	switch c.Order.Status() {
	case order.Pending:
		return errors.New("the order is not started")
	case order.Started:
		return nil
	default:
		return errors.New("the order has already been sent")
	}
}

// OrderCanBeDelivered verifies the order is sent and not delivered yet.
type OrderCanBeDelivered struct {
	Order *order.Order
}

func (c OrderCanBeDelivered) Validate(_ context.Context) error {
	switch c.Order.Status() {
	case order.Pending, order.Started:
		return errors.New("the order is not sent")
	case order.Sent:
		return nil
	default:
		return errors.New("the order has already been delivered")
	}
}

// resolvableIDs converts the positive product ids of the lines, deduplicated,
// preserving first-seen order.
func resolvableIDs(lines []LineInput) []kernel.ID {
	seen := make(map[kernel.ID]struct{}, len(lines))
	ids := make([]kernel.ID, 0, len(lines))
	for _, line := range lines {
		id, err := kernel.NewID(line.ProductID)
		if err != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
