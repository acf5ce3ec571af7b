package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"
	"courier/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves the courier's working set of orders.
// Completed orders stay in the result; the list reflects every lifecycle
// change immediately because it reads the same store the commands write to.
//
// Example:
//
//	query := NewGetPendingOrdersQuery()
//	handler := NewGetPendingOrdersQueryHandler(orderStore)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, summary := range response.Orders {
//	    fmt.Printf("#%s %s %d so'm\n", summary.ID, summary.Status, summary.Total)
//	}
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for the order working set.
// This is a parameterless query; filtering happens on the caller's side.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingOrdersQueryIsNotConstructed if validation fails.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// OrderSummary is one row of the order list.
type OrderSummary struct {
	ID           string
	CustomerName string
	Address      string
	Status       order.Status
	ItemCount    int
	Total        int
	CreatedAt    time.Time
}

// GetPendingOrdersQueryResponse carries the working set together with its
// load state. While State is Loading the order list is empty; when State is
// Failed, LoadError holds the fetch failure and the list is empty as well.
type GetPendingOrdersQueryResponse struct {
	State     ports.LoadState
	LoadError error
	Orders    []OrderSummary
}
