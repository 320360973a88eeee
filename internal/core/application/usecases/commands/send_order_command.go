package commands

import (
	"errors"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/guard"
)

var ErrSendOrderCommandIsNotConstructed = errors.New(
	"SendOrderCommand must be created via NewSendOrderCommand constructor",
)

// SendOrderCommand represents the restaurant owner dispatching a started order.
type SendOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewSendOrderCommand creates a command to dispatch a started order.
func NewSendOrderCommand(orderID kernel.ID) (SendOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SendOrderCommand{}, err
	}

	return SendOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendOrderCommand) Validate() error {
	return c.guard.Validate(ErrSendOrderCommandIsNotConstructed)
}

// OrderID returns the order to dispatch.
func (c SendOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
