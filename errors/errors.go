// Package errors provides standardized error handling for gateway components.
// It includes error classification, standard error variables, and helper
// functions for consistent error wrapping across adapters and surfaces.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies errors for surface-level handling. Adapters normalize
// every backend failure into exactly one Kind; surfaces map kinds to their
// protocol's error convention and never inspect transport details.
type Kind int

const (
	// KindUnavailable represents transport failures: the backend or bus
	// connection was never established or was lost mid-call.
	KindUnavailable Kind = iota
	// KindNotFound represents a backend report of a missing entity.
	KindNotFound
	// KindInvalid represents a backend rejection of a malformed request.
	KindInvalid
	// KindInternal represents any other backend-reported failure.
	KindInternal
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Adapter and publisher lifecycle errors
	ErrBackendDegraded = errors.New("backend connection never established")
	ErrBusDegraded     = errors.New("bus connection never established")
	ErrAlreadyStarted  = errors.New("component already started")
	ErrNotStarted      = errors.New("component not started")

	// Connection errors
	ErrNoConnection      = errors.New("no connection available")
	ErrConnectionTimeout = errors.New("connection timeout")

	// Entity errors
	ErrNotFound = errors.New("entity not found")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
)

// Error wraps an error with its classification and call-site context.
type Error struct {
	Kind      Kind
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// IsUnavailable checks if an error represents a transport-level failure
func IsUnavailable(err error) bool {
	return kindIs(err, KindUnavailable) ||
		errors.Is(err, ErrBackendDegraded) ||
		errors.Is(err, ErrBusDegraded) ||
		errors.Is(err, ErrNoConnection) ||
		errors.Is(err, ErrConnectionTimeout)
}

// IsNotFound checks if an error represents a missing entity
func IsNotFound(err error) bool {
	return kindIs(err, KindNotFound) || errors.Is(err, ErrNotFound)
}

// IsInvalid checks if an error represents a rejected request payload
func IsInvalid(err error) bool {
	return kindIs(err, KindInvalid) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrMissingConfig)
}

func kindIs(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// KindOf returns the classification of an error. Unclassified errors are
// reported as KindInternal so surfaces fall through to their 500-equivalent.
func KindOf(err error) Kind {
	if IsUnavailable(err) {
		return KindUnavailable
	}
	if IsNotFound(err) {
		return KindNotFound
	}
	if IsInvalid(err) {
		return KindInvalid
	}
	return KindInternal
}

// newClassified creates a new classified error.
// Internal helper - use the Wrap* constructors instead.
func newClassified(kind Kind, err error, component, operation, message string) *Error {
	return &Error{
		Kind:      kind,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapUnavailable wraps an error as a transport-level failure with context
func WrapUnavailable(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, method, action)
	return newClassified(KindUnavailable, wrapped, component, method, wrapped.Error())
}

// WrapNotFound wraps an error as a missing-entity report with context
func WrapNotFound(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, method, action)
	return newClassified(KindNotFound, wrapped, component, method, wrapped.Error())
}

// WrapInvalid wraps an error as a rejected-request report with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, method, action)
	return newClassified(KindInvalid, wrapped, component, method, wrapped.Error())
}

// WrapInternal wraps any other backend-reported failure with context
func WrapInternal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, method, action)
	return newClassified(KindInternal, wrapped, component, method, wrapped.Error())
}
