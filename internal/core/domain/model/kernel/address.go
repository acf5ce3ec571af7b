package kernel

import (
	"strings"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"Address must be created via NewAddress constructor")

// Address is a free-text delivery destination as entered by the customer.
// It is an immutable value object. The console does not geocode or normalize
// the text; it only requires that an address is present, since every order a
// courier can act on must be deliverable somewhere.
//
// Example:
//
//	addr, err := kernel.NewAddress("Toshkent, Chilonzor tumani, 7-kvartal")
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	text  string
	guard guard.ConstructorGuard
}

// NewAddress creates an Address from free text.
// The text must be non-blank; no other structure is assumed.
func NewAddress(text string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := addr.setText(text); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks that the Address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// String returns the address text.
func (a Address) String() string {
	return a.text
}

// IsEqual reports whether two addresses carry the same text.
func (a Address) IsEqual(other Address) bool {
	return a.text == other.text
}

func (a *Address) setText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errs.NewValueIsRequiredError("address")
	}

	a.text = text
	return nil
}
