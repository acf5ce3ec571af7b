package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order from the working set for the detail view.
//
// Example:
//
//	orderID, _ := kernel.NewOrderID("4")
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewGetOrderQueryHandler(orderStore)
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err // unknown id surfaces as an ObjectNotFoundError
//	}
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
// Returns an error if the identifier is invalid.
func NewGetOrderQuery(orderID kernel.OrderID) (GetOrderQuery, error) {
	orderQuery := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderQuery.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return orderQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// ItemView is one order line on the detail view, with its precomputed
// subtotal.
type ItemView struct {
	Name     string
	Quantity int
	Price    int
	Subtotal int
}

// GetOrderQueryResponse is the full order detail.
type GetOrderQueryResponse struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Address       string
	Status        order.Status
	Items         []ItemView
	Total         int
	CreatedAt     time.Time
}
