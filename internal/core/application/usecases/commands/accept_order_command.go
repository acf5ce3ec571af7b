package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a courier's request to take a new order
// into work.
//
// Example:
//
//	orderID, _ := kernel.NewOrderID("4")
//	cmd, err := NewAcceptOrderCommand(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewAcceptOrderCommandHandler(orderStore, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to accept order: %w", err)
//	}
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept the order with the given
// identifier. Returns an error if the identifier is invalid.
func NewAcceptOrderCommand(orderID kernel.OrderID) (AcceptOrderCommand, error) {
	acceptCommand := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := acceptCommand.setOrderID(orderID); err != nil {
		return AcceptOrderCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOrderCommandIsNotConstructed if validation fails.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to accept.
func (c AcceptOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
