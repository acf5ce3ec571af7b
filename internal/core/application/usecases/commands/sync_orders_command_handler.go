package commands

import (
	"context"

	"courier/internal/core/ports"
)

// SyncOrdersCommandHandler pulls orders from the configured source into the
// working set. The first successful sync seeds the store and moves it to
// Ready; later syncs only add orders whose identifiers are not yet present,
// so lifecycle changes made by the courier are never rolled back.
//
// Example:
//
//	handler := NewSyncOrdersCommandHandler(orderSource, orderStore)
//	if err := handler.Handle(ctx, NewSyncOrdersCommand()); err != nil {
//	    log.Error("order sync failed", "error", err)
//	}
type SyncOrdersCommandHandler struct {
	orderSource ports.OrderSource
	orderStore  ports.OrderStore
}

// NewSyncOrdersCommandHandler creates a handler for order synchronization.
func NewSyncOrdersCommandHandler(
	orderSource ports.OrderSource,
	orderStore ports.OrderStore,
) SyncOrdersCommandHandler {
	return SyncOrdersCommandHandler{
		orderSource: orderSource,
		orderStore:  orderStore,
	}
}

// Handle processes the sync command.
// Fetches orders from the source and seeds the store with them. A fetch
// abandoned through context cancellation is discarded without touching the
// store; any other fetch failure is recorded so readers can distinguish a
// failed load from an empty one.
func (h *SyncOrdersCommandHandler) Handle(ctx context.Context, cmd SyncOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orders, err := h.orderSource.FetchOrders(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}

		h.orderStore.MarkFailed(ctx, err)
		return err
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return h.orderStore.Seed(ctx, orders)
}
