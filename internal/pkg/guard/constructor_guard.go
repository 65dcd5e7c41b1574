// Package guard provides the ConstructorGuard pattern used to ensure that
// value objects, commands, and aggregates are only created through their
// designated constructor functions, never as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by
// ConstructorGuard.Validate when a nil error is passed as the validation
// error. Validation always fails with a meaningful message even if no
// specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is a defensive pattern that distinguishes objects created
// through their constructor from zero-value instances. Embed it in a struct
// and set it with NewConstructorGuard inside the constructor; Validate then
// detects any object that bypassed construction.
//
// Example:
//
//	var ErrCommandNotConstructed = errors.New("SaveDraftCommand must be created via NewSaveDraftCommand")
//
//	type SaveDraftCommand struct {
//	    sessionID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c SaveDraftCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
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
