// Package memstore provides the in-memory implementation of the working-set
// order store. The working set lives only for the lifetime of the process and
// is the single source of truth for order lifecycle state: list and detail
// operations share it, so a completion performed on the detail view is
// visible on the list.
package memstore

import (
	"context"
	"sync"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// InMemoryOrderStore implements ports.OrderStore with a mutex-guarded map
// plus an insertion-order index. Reads hand out defensive copies so the
// working set only ever changes through Update.
type InMemoryOrderStore struct {
	mu      sync.RWMutex
	orders  map[string]*order.Order
	seq     []kernel.OrderID
	state   ports.LoadState
	loadErr error
}

// NewInMemoryOrderStore creates an empty working set in Loading state.
func NewInMemoryOrderStore() *InMemoryOrderStore {
	return &InMemoryOrderStore{
		orders: make(map[string]*order.Order),
		state:  ports.Loading,
	}
}

// Seed adds fetched orders to the working set in their given order, skipping
// identifiers that are already present, and marks the store Ready.
// Lifecycle state of orders already in the working set is never overwritten.
func (s *InMemoryOrderStore) Seed(_ context.Context, orders []*order.Order) error {
	for _, aggregate := range orders {
		if err := aggregate.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, aggregate := range orders {
		key := aggregate.ID().String()
		if _, exists := s.orders[key]; exists {
			continue
		}

		stored, err := cloneOrder(aggregate)
		if err != nil {
			return err
		}

		s.orders[key] = stored
		s.seq = append(s.seq, aggregate.ID())
	}

	s.state = ports.Ready
	s.loadErr = nil
	return nil
}

// Get retrieves a defensive copy of one order by its identifier.
func (s *InMemoryOrderStore) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}

	return cloneOrder(stored)
}

// Update replaces the stored order with the same identifier.
func (s *InMemoryOrderStore) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := aggregate.ID().String()
	if _, ok := s.orders[key]; !ok {
		return errs.NewObjectNotFoundError("orderId", key)
	}

	stored, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	s.orders[key] = stored
	return nil
}

// GetAll returns copies of all orders in their seeding order.
func (s *InMemoryOrderStore) GetAll(_ context.Context) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*order.Order, 0, len(s.seq))
	for _, id := range s.seq {
		copied, err := cloneOrder(s.orders[id.String()])
		if err != nil {
			return nil, err
		}
		orders = append(orders, copied)
	}

	return orders, nil
}

// State reports the load state and, when Failed, the load error.
func (s *InMemoryOrderStore) State(_ context.Context) (ports.LoadState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state, s.loadErr
}

// MarkFailed records a failed initial load. A store that already reached
// Ready keeps its working set; the late failure is ignored.
func (s *InMemoryOrderStore) MarkFailed(_ context.Context, loadErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == ports.Ready {
		return
	}

	s.state = ports.Failed
	s.loadErr = loadErr
}

// cloneOrder reconstructs an equal, independent aggregate so callers can
// never mutate the stored one in place.
func cloneOrder(aggregate *order.Order) (*order.Order, error) {
	return order.RestoreOrder(
		aggregate.ID(),
		aggregate.Customer(),
		aggregate.Address(),
		aggregate.Items(),
		aggregate.Status(),
		aggregate.CreatedAt(),
	)
}
