package domain

import "errors"

// Sentinel errors for domain registration and index generation.
var (
	// ErrDuplicateObject indicates a directive tried to register an object
	// name that already exists; the first registration is kept.
	ErrDuplicateObject = errors.New("object already registered")
	// ErrEmptyName indicates an object was registered without a name or
	// display name.
	ErrEmptyName = errors.New("object name cannot be empty")
	// ErrDuplicateDomain indicates two domains share the same name.
	ErrDuplicateDomain = errors.New("domain already registered")
	// ErrMissingArgument indicates a directive was invoked without its
	// required argument.
	ErrMissingArgument = errors.New("directive requires an argument")
	// ErrUnknownObject indicates an attribute entry references an object
	// name that was never registered. This is an internal-invariant
	// violation, fatal to the build.
	ErrUnknownObject = errors.New("attribute entry references unknown object")
)
