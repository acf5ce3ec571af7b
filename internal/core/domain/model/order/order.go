package order

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a delivery order in the courier console. It is the
// aggregate root that manages the order lifecycle from arrival through
// acceptance to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, customer and delivery address
//   - Must have at least one line item; items are immutable after creation
//   - Status only ever advances new -> accepted -> completed
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to maintain its invariants through
// validated methods.
type Order struct {
	// id is the opaque identifier assigned by the order source
	id kernel.OrderID

	// customer is the immutable contact record
	customer Customer

	// address is the delivery destination
	address kernel.Address

	// items is the non-empty, immutable list of order lines
	items []Item

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the order creation timestamp as reported by the source
	createdAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates an order fresh from the order source, in New status.
// This is the only way (besides RestoreOrder) to create a valid Order,
// ensuring all business invariants hold.
//
// Parameters:
//   - id: opaque identifier assigned by the order source
//   - customer: contact record (must be constructed via NewCustomer)
//   - address: delivery destination (must be constructed via kernel.NewAddress)
//   - items: at least one line item, each constructed via NewItem
//   - createdAt: creation timestamp reported by the source (must not be zero)
//
// Example:
//
//	id, _ := kernel.NewOrderID("1")
//	customer, _ := order.NewCustomer("Umarov Sardor", "+998 90 123 45 67")
//	address, _ := kernel.NewAddress("Toshkent, Chilonzor tumani, 7-kvartal")
//	item, _ := order.NewItem("Lavash Mol go'shtli", 2, 28000)
//	o, err := order.NewOrder(id, customer, address, []order.Item{item}, createdAt)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.OrderID,
	customer Customer,
	address kernel.Address,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setAddress(address),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from an external representation,
// preserving its current status. Used by adapters (stores and sources) when
// materializing orders; the status must be a valid lifecycle state.
func RestoreOrder(
	id kernel.OrderID,
	customer Customer,
	address kernel.Address,
	items []Item,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customer, address, items, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Customer returns the immutable contact record.
func (o *Order) Customer() Customer {
	return o.customer
}

// Address returns the delivery destination.
func (o *Order) Address() kernel.Address {
	return o.address
}

// Items returns a copy of the order lines, preserving their original order.
// The copy keeps the aggregate's own slice immutable to callers.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp reported by the order source.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total returns the sum of quantity times unit price over all line items,
// in minor currency units. The result does not depend on item order and is
// non-negative for any constructible order.
func (o *Order) Total() int {
	total := 0
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// Accept marks the order as taken by the courier.
//
// Business rules:
//   - The order must currently be in New status
//   - Accepting an accepted or completed order is rejected with an
//     invalid-transition error rather than silently applied
//
// After a successful call the order's status is Accepted.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as delivered.
//
// Business rules:
//   - The order must currently be in Accepted status
//   - Completed is terminal: a repeated Complete is rejected
//
// After a successful call the order's status is Completed.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
