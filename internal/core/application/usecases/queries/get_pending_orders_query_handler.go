package queries

import (
	"context"

	"courier/internal/core/ports"
)

// GetPendingOrdersQueryHandler reads the order working set for display.
// Orders come back in the fixed order they were seeded in, each with its
// computed total.
type GetPendingOrdersQueryHandler struct {
	orderStore ports.OrderStore
}

// NewGetPendingOrdersQueryHandler creates a handler for order list queries.
func NewGetPendingOrdersQueryHandler(orderStore ports.OrderStore) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{orderStore: orderStore}
}

// Handle executes the query against the working set.
// While the initial load is in flight or has failed, the response carries
// the state and no orders rather than a partial list.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) (GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	state, loadErr := h.orderStore.State(ctx)
	response := GetPendingOrdersQueryResponse{
		State:     state,
		LoadError: loadErr,
		Orders:    make([]OrderSummary, 0),
	}
	if state != ports.Ready {
		return response, nil
	}

	orders, err := h.orderStore.GetAll(ctx)
	if err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	for _, aggregate := range orders {
		response.Orders = append(response.Orders, OrderSummary{
			ID:           aggregate.ID().String(),
			CustomerName: aggregate.Customer().Name(),
			Address:      aggregate.Address().String(),
			Status:       aggregate.Status(),
			ItemCount:    len(aggregate.Items()),
			Total:        aggregate.Total(),
			CreatedAt:    aggregate.CreatedAt(),
		})
	}

	return response, nil
}
