// Package guard provides the constructor-guard pattern used by commands,
// queries, and domain objects to detect zero-value instances that bypassed
// their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is provided for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. A zero-value struct fails Validate, which prevents accidental
// use of unvalidated instances.
//
// Example:
//
//	type CreateLetterCommand struct {
//	    message string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCreateLetterCommand(message string) (CreateLetterCommand, error) {
//	    // ... validation ...
//	    return CreateLetterCommand{message: message, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateLetterCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateLetterCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the embedding object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed object, the provided error
// for a zero-value one, or ErrDefaultConstructorGuard if validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
