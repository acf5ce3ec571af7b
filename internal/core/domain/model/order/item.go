package order

import (
	"errors"
	"fmt"
	"strings"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single order line: a dish or product name, how many of it the
// customer ordered, and the unit price in minor currency units (so'm tiyin-free
// integers in the sample data). Items are immutable once the order is created.
//
// Example:
//
//	item, err := order.NewItem("Lavash Mol go'shtli", 2, 28000)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(item.Subtotal()) // Output: 56000
type Item struct { //nolint:recvcheck //using for validation
	name     string
	quantity int
	price    int

	guard guard.ConstructorGuard
}

// NewItem creates an order line with validation.
// The name must be non-blank, quantity must be positive, and price must be a
// non-negative integer in minor currency units.
func NewItem(name string, quantity int, price int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the dish or product name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns how many units the customer ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price in minor currency units.
func (i Item) Price() int {
	return i.price
}

// Subtotal returns quantity times unit price.
// Integer arithmetic in minor currency units, so there are no rounding concerns.
func (i Item) Subtotal() int {
	return i.quantity * i.price
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}
	i.price = price
	return nil
}
