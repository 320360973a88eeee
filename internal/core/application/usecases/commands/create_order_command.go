package commands

import (
	"errors"

	"deliverus/internal/core/application/validation"
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
)

// CreateOrderCommand represents a customer's request to place a new order
// with a restaurant. The restaurant reference and lines are carried raw: the
// handler's validation checks resolve them against the store and report every
// failing rule at once.
//
// Example:
//
//	customerID, _ := kernel.NewID(7)
//	lines := []validation.LineInput{{ProductID: 3, Quantity: 2}}
//	cmd, err := NewCreateOrderCommand(customerID, 1, lines, "Main St 1")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.ID
	restaurantID int64
	lines        []validation.LineInput
	address      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// The authenticated customer and the delivery address are validated here;
// restaurant and line resolution is left to the handler's checks.
func NewCreateOrderCommand(
	customerID kernel.ID,
	restaurantID int64,
	lines []validation.LineInput,
	address string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		restaurantID: restaurantID,
		lines:        lines,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setAddress(address),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the authenticated customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

// RestaurantID returns the raw restaurant reference from the request.
func (c CreateOrderCommand) RestaurantID() int64 {
	return c.restaurantID
}

// Lines returns the raw order lines from the request.
func (c CreateOrderCommand) Lines() []validation.LineInput {
	return c.lines
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}
