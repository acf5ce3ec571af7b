package order

import (
	"errors"
	"strings"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the NewCustomer factory function.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the immutable contact record attached to an order: who to hand
// the delivery to and which number to call on arrival.
type Customer struct { //nolint:recvcheck //using for validation
	name  string
	phone string

	guard guard.ConstructorGuard
}

// NewCustomer creates a contact record with validation.
// Both the name and the phone number must be non-blank; the phone format is
// free text as the order source provides it.
func NewCustomer(name string, phone string) (Customer, error) {
	customer := Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setPhone(phone),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate ensures the Customer was created via NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's display name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number as free text.
func (c Customer) Phone() string {
	return c.phone
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.phone = phone
	return nil
}
