package queries

import (
	"context"

	"courier/internal/core/ports"
)

// GetOrderQueryHandler reads one order from the working set for the detail
// view. An unknown identifier is reported as an ObjectNotFoundError so the
// caller can render a safe "not found" outcome instead of partial data.
type GetOrderQueryHandler struct {
	orderStore ports.OrderStore
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(orderStore ports.OrderStore) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderStore: orderStore}
}

// Handle executes the query for a single order.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	aggregate, err := h.orderStore.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items := make([]ItemView, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemView{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
			Subtotal: item.Subtotal(),
		})
	}

	return GetOrderQueryResponse{
		ID:            aggregate.ID().String(),
		CustomerName:  aggregate.Customer().Name(),
		CustomerPhone: aggregate.Customer().Phone(),
		Address:       aggregate.Address().String(),
		Status:        aggregate.Status(),
		Items:         items,
		Total:         aggregate.Total(),
		CreatedAt:     aggregate.CreatedAt(),
	}, nil
}
