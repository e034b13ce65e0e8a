package iterables

import (
	"errors"
	"fmt"
)

// Error type constants for classification and matching
const (
	// ErrorTypeUsage indicates malformed command input. Usage errors are
	// recovered locally by the command layer and cause no state change.
	ErrorTypeUsage = "usage_error"

	// ErrorTypeUnknownProviderType indicates a define-time reference to a
	// provider type that is not registered.
	ErrorTypeUnknownProviderType = "unknown_provider_type"

	// ErrorTypeUndefinedIterable indicates a lookup of an iterable name
	// that does not exist in the store.
	ErrorTypeUndefinedIterable = "undefined_iterable"

	// ErrorTypeDanglingProviderReference indicates a generate-time
	// reference to a provider type that is no longer registered. This is
	// distinct from ErrorTypeUnknownProviderType, which can only occur at
	// define time.
	ErrorTypeDanglingProviderReference = "dangling_provider_reference"

	// ErrorTypeProviderTypeConflict indicates an attempt to register a
	// second provider under an already-registered type key.
	ErrorTypeProviderTypeConflict = "provider_type_conflict"

	// ErrorTypeActionFailure indicates the action runner failed for one
	// item. Action failures are isolated to that item and do not abort
	// the batch.
	ErrorTypeActionFailure = "action_failure"

	// ErrorTypeGenerationFailure indicates the provider's sequence itself
	// failed while producing the next item. Generation failures abort the
	// batch after the final checkpoint restore.
	ErrorTypeGenerationFailure = "generation_failure"
)

// IterableError represents a structured error with classification.
// It supports Go's error wrapping patterns with the Unwrap() method.
type IterableError struct {
	Type    string `json:"type"`
	Cause   string `json:"cause"`
	Details any    `json:"details,omitempty"`
	Wrapped error  `json:"-"` // Original error being wrapped
}

// Error implements the error interface
func (e *IterableError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Cause)
}

// Unwrap implements the error unwrapping interface for errors.Is and errors.As
func (e *IterableError) Unwrap() error {
	return e.Wrapped
}

// NewIterableError creates a new IterableError with the given type and cause.
func NewIterableError(errorType, cause string) *IterableError {
	return &IterableError{Type: errorType, Cause: cause}
}

// NewUsageError creates a usage error with a formatted message.
func NewUsageError(format string, args ...any) *IterableError {
	return &IterableError{Type: ErrorTypeUsage, Cause: fmt.Sprintf(format, args...)}
}

// NewUnknownProviderTypeError creates a define-time unknown provider type error.
func NewUnknownProviderTypeError(typeKey string) *IterableError {
	return &IterableError{
		Type:    ErrorTypeUnknownProviderType,
		Cause:   fmt.Sprintf("no provider registered for type %q", typeKey),
		Details: typeKey,
	}
}

// NewUndefinedIterableError creates an error for an unknown iterable name.
func NewUndefinedIterableError(name string) *IterableError {
	return &IterableError{
		Type:    ErrorTypeUndefinedIterable,
		Cause:   fmt.Sprintf("iterable %q is not defined", name),
		Details: name,
	}
}

// NewDanglingProviderError creates a generate-time error for a definition
// whose provider type is no longer registered.
func NewDanglingProviderError(name, typeKey string) *IterableError {
	return &IterableError{
		Type:    ErrorTypeDanglingProviderReference,
		Cause:   fmt.Sprintf("iterable %q references provider type %q which is not registered", name, typeKey),
		Details: typeKey,
	}
}

// NewProviderTypeConflictError creates a registry re-registration error.
func NewProviderTypeConflictError(typeKey string) *IterableError {
	return &IterableError{
		Type:    ErrorTypeProviderTypeConflict,
		Cause:   fmt.Sprintf("provider type %q is already registered", typeKey),
		Details: typeKey,
	}
}

// NewActionFailure wraps an action runner error for one item, tagged with
// the 1-based item index.
func NewActionFailure(index int, err error) *IterableError {
	return &IterableError{
		Type:    ErrorTypeActionFailure,
		Cause:   fmt.Sprintf("item %d: %s", index, err.Error()),
		Details: index,
		Wrapped: err,
	}
}

// NewGenerationFailure wraps an error raised while pulling the next item
// from a provider's sequence.
func NewGenerationFailure(name string, err error) *IterableError {
	return &IterableError{
		Type:    ErrorTypeGenerationFailure,
		Cause:   fmt.Sprintf("generating items for %q: %s", name, err.Error()),
		Details: name,
		Wrapped: err,
	}
}

// IsErrorType reports whether err is an IterableError of the given type.
func IsErrorType(err error, errorType string) bool {
	var iterErr *IterableError
	if errors.As(err, &iterErr) {
		return iterErr.Type == errorType
	}
	return false
}
