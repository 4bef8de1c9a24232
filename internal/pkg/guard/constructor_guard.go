// Package guard provides a defensive construction pattern for value objects,
// commands, and entities. Embedding a ConstructorGuard lets a type detect
// whether it was created through its designated constructor or as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is provided and the object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. The zero value fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it in the
// constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was built through its
// constructor, otherwise the provided validationError (or
// ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
