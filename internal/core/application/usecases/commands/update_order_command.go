package commands

import (
	"errors"

	"deliverus/internal/core/application/validation"
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a customer's request to edit a pending order.
// Editing is a full replacement of the line set and address; the restaurant is
// immutable, so a request that supplies one is rejected by the handler's checks.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.ID
	lines              []validation.LineInput
	address            string
	restaurantSupplied bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit a pending order.
// restaurantSupplied records whether the request carried a restaurant
// reference; the handler rejects such requests.
func NewUpdateOrderCommand(
	orderID kernel.ID,
	lines []validation.LineInput,
	address string,
	restaurantSupplied bool,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		lines:              lines,
		restaurantSupplied: restaurantSupplied,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAddress(address),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// Lines returns the replacement lines from the request.
func (c UpdateOrderCommand) Lines() []validation.LineInput {
	return c.lines
}

// Address returns the replacement delivery address.
func (c UpdateOrderCommand) Address() string {
	return c.address
}

// RestaurantSupplied reports whether the request tried to change the restaurant.
func (c UpdateOrderCommand) RestaurantSupplied() bool {
	return c.restaurantSupplied
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}
