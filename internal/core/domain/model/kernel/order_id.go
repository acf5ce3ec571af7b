package kernel

import (
	"strings"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// ErrOrderIDIsNotConstructed is returned when attempting to use an improperly
// initialized OrderID. OrderIDs must be created via NewOrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID constructor")

// OrderID is an opaque order identifier assigned by the order source.
// It is an immutable value object; the console never generates order IDs
// itself, it only carries the ones the source hands out. The zero value is
// invalid and fails validation.
//
// Example:
//
//	id, err := kernel.NewOrderID("3")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(id.String()) // Output: 3
type OrderID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewOrderID creates an OrderID from its string form.
// The identifier must be non-blank; no other structure is assumed.
func NewOrderID(value string) (OrderID, error) {
	id := OrderID{
		guard: guard.NewConstructorGuard(),
	}

	if err := id.setValue(value); err != nil {
		return OrderID{}, err
	}

	return id, nil
}

// Validate checks that the OrderID was created via NewOrderID.
func (id OrderID) Validate() error {
	return id.guard.Validate(ErrOrderIDIsNotConstructed)
}

// String returns the identifier as handed out by the order source.
func (id OrderID) String() string {
	return id.value
}

// IsEqual reports whether two OrderIDs identify the same order.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

func (id *OrderID) setValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	id.value = value
	return nil
}
