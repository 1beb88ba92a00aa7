package typekit

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions. They can be matched with
// errors.Is through any wrapping the facade adds.
var (
	// ErrTypeNotFound indicates the requested type name is not registered.
	ErrTypeNotFound = errors.New("type not found")

	// ErrInvalidValue indicates a value failed validation against its
	// schema. The wrapping error carries the validation messages.
	ErrInvalidValue = errors.New("invalid value")
)

// Error kinds categorize errors by their type.
const (
	// KindNotFound represents errors where a type name was not found.
	KindNotFound = "not_found"

	// KindValidation represents errors from value validation.
	KindValidation = "validation"

	// KindConfiguration represents errors building or loading a TypeSystem.
	KindConfiguration = "configuration"
)

// Error is a structured error that wraps an underlying error with the
// operation that failed and the category of failure.
//
// Error supports unwrapping, so errors.Is works against both the sentinel
// errors and other Error values matched by kind.
type Error struct {
	// Op is the operation that failed (e.g., "TypeSystem.ValidateAs").
	Op string

	// Kind categorizes the error (e.g., KindNotFound, KindValidation).
	Kind string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("typekit: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("typekit: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by kind (and op, when the target sets one), or
// delegates to the underlying error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}
	return errors.Is(e.Err, target)
}

// NewNotFoundError creates an Error with KindNotFound.
func NewNotFoundError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindNotFound, Err: err}
}

// NewValidationError creates an Error with KindValidation.
func NewValidationError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindValidation, Err: err}
}

// NewConfigurationError creates an Error with KindConfiguration.
func NewConfigurationError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindConfiguration, Err: err}
}
