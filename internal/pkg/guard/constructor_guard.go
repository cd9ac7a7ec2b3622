// Package guard provides a defensive pattern that ensures value objects,
// commands, and queries are only created through their designated
// constructor functions. Embedding a ConstructorGuard in a struct makes a
// zero-value instance distinguishable from a properly constructed one.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate
// when a nil validation error is provided. This ensures validation always
// fails with a meaningful message for zero-value objects.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the enclosing object was created through
// its constructor. The zero value reports the object as not constructed.
//
// Example usage:
//
//	var ErrCommandNotConstructed = errors.New("command must be created via its constructor")
//
//	type SomeCommand struct {
//	    field string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSomeCommand(field string) (SomeCommand, error) {
//	    if field == "" {
//	        return SomeCommand{}, errors.New("field is required")
//	    }
//	    return SomeCommand{field: field, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c SomeCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call this in the constructor of guarded objects.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object was created through its
// constructor. For zero-value objects it returns validationError, or
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
