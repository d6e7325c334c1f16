// Package guard implements the constructor-guard pattern used by the domain's
// value objects and commands. Embedding a ConstructorGuard in a struct makes
// zero-value instances distinguishable from instances built through their
// designated constructor, so Validate methods can reject objects that skipped
// construction-time validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied and the guarded object was not built through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its enclosing struct was created through a
// constructor function. The zero value reports not-constructed.
//
// Example:
//
//	type Decoration struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewDecoration(name string) (Decoration, error) {
//	    if name == "" {
//	        return Decoration{}, errs.NewValueIsRequiredError("name")
//	    }
//	    return Decoration{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (d Decoration) Validate() error {
//	    return d.guard.Validate(ErrDecorationIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed. Call it only from constructor functions.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
