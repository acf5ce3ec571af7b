package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
)

// LoadState describes how far the working set has come in its initial load.
type LoadState int

const (
	// Loading means the initial fetch from the order source is still in flight.
	Loading LoadState = iota

	// Ready means the working set has been seeded and can be read.
	Ready

	// Failed means the initial fetch failed; the failure is distinguishable
	// from an empty result and carries the load error.
	Failed
)

// String returns a readable name for the load state.
func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// OrderStore is the authoritative working set of orders for the courier's
// session. Both the list and the detail operations read from and mutate
// through this single store, so a lifecycle transition performed on the
// detail view is immediately visible on the list.
//
// The store starts in Loading state; seeding moves it to Ready and a failed
// initial fetch moves it to Failed. Orders are returned in the fixed order
// they were seeded in.
type OrderStore interface {
	// Seed adds fetched orders to the working set, skipping IDs that are
	// already present, and marks the store Ready. Lifecycle state of orders
	// already in the working set is never overwritten.
	Seed(ctx context.Context, orders []*order.Order) error

	// Get retrieves a defensive copy of one order by its identifier.
	// Returns an ObjectNotFoundError when the ID is not in the working set.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// Update replaces the stored order that has the same identifier.
	// Returns an ObjectNotFoundError when the ID is not in the working set.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetAll returns copies of all orders in their seeding order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// State reports the load state; when Failed, the returned error is the
	// load error that caused it, nil otherwise.
	State(ctx context.Context) (LoadState, error)

	// MarkFailed records a failed initial load. Once the store is Ready a
	// later failure is ignored: a populated working set stays usable.
	MarkFailed(ctx context.Context, loadErr error)
}
