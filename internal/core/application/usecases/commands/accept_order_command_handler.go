package commands

import (
	"context"

	"courier/internal/core/ports"
)

// AcceptOrderCommandHandler handles the business logic for taking an order
// into work. Moves the order from "new" to "accepted" in the working set;
// an order in any other status is rejected unchanged.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(orderStore, notifier)
//	orderID, _ := kernel.NewOrderID("4")
//	cmd, _ := NewAcceptOrderCommand(orderID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("accept failed: %w", err)
//	}
//	// The order is now visible as accepted on both list and detail views.
type AcceptOrderCommandHandler struct {
	orderStore ports.OrderStore
	notifier   ports.Notifier
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	orderStore ports.OrderStore,
	notifier ports.Notifier,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		orderStore: orderStore,
		notifier:   notifier,
	}
}

// Handle processes the accept command.
// Loads the order, performs the status transition, and writes the result
// back. Exactly one order changes; the rest of the working set is untouched.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderStore.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Accept(); err != nil {
		return err
	}

	if err = h.orderStore.Update(ctx, aggregate); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.Notification{
		Title:       "Order accepted",
		Description: "Order #" + aggregate.ID().String() + " is now in progress",
		Severity:    ports.SeverityInfo,
	})

	return nil
}
