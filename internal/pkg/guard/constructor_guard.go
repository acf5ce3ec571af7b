package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is provided for an object that was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created through
// their designated constructor functions. Embedding a guard in a struct makes
// zero-value instances distinguishable from properly constructed ones, so
// validation can reject them before any business logic runs.
//
// Example:
//
//	type LoginCommand struct {
//	    username string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewLoginCommand(username string) (LoginCommand, error) {
//	    if username == "" {
//	        return LoginCommand{}, errors.New("username is required")
//	    }
//	    return LoginCommand{username: username, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c LoginCommand) Validate() error {
//	    return c.guard.Validate(ErrLoginCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
