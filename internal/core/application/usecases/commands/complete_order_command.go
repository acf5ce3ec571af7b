package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a courier's request to mark an accepted
// order as delivered.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete the order with the
// given identifier. Returns an error if the identifier is invalid.
func NewCompleteOrderCommand(orderID kernel.OrderID) (CompleteOrderCommand, error) {
	completeCommand := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := completeCommand.setOrderID(orderID); err != nil {
		return CompleteOrderCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to complete.
func (c CompleteOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
