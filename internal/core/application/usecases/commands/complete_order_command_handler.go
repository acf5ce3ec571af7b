package commands

import (
	"context"

	"courier/internal/core/ports"
)

// CompleteOrderCommandHandler handles the business logic for finishing a
// delivery. Moves the order from "accepted" to "completed"; completion is
// terminal and the order stays visible in the working set.
type CompleteOrderCommandHandler struct {
	orderStore ports.OrderStore
	notifier   ports.Notifier
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	orderStore ports.OrderStore,
	notifier ports.Notifier,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		orderStore: orderStore,
		notifier:   notifier,
	}
}

// Handle processes the complete command.
// Loads the order, performs the status transition, and writes the result
// back. Only an accepted order can be completed.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderStore.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Complete(); err != nil {
		return err
	}

	if err = h.orderStore.Update(ctx, aggregate); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.Notification{
		Title:       "Order completed",
		Description: "Order #" + aggregate.ID().String() + " has been delivered",
		Severity:    ports.SeverityInfo,
	})

	return nil
}
