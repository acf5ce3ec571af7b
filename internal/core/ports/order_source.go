package ports

import (
	"context"

	"courier/internal/core/domain/model/order"
)

// OrderSource is the external origin of orders. The fixture implementation
// stands in for a real backend with a configurable simulated delay; the
// Postgres implementation reads from a database. View logic never depends on
// which one is wired.
//
// FetchOrders must honor context cancellation: a fetch abandoned by the
// caller is discarded, never applied.
type OrderSource interface {
	// FetchOrders returns the source's orders in their creation order.
	// An empty slice is a valid result; an error means the load failed.
	FetchOrders(ctx context.Context) ([]*order.Order, error)
}
