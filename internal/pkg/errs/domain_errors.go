package errs

import (
	"fmt"

	cr "github.com/cockroachdb/errors"
)

// Failure taxonomy shared by the booking engine and the assistant layer
var (
	ErrValidation = New("validation error")

	ErrNotFound        = New("not found")
	ErrEventNotFound   = Mark(New("event not found"), ErrNotFound)
	ErrBookingNotFound = Mark(New("booking not found"), ErrNotFound)

	ErrInsufficientInventory = New("insufficient inventory")
	ErrInventoryInvariant    = New("inventory invariant violated")
	ErrDoubleCancellation    = New("booking is already cancelled")

	ErrMissingRequiredField    = New("missing required field")
	ErrOracleUnavailable       = New("oracle unavailable")
	ErrMalformedOracleResponse = New("malformed oracle response")

	ErrPersistenceFailure = New("persistence failure")
	ErrDuplicateReference = New("duplicate booking reference")
)

// InsufficientInventoryError reports the availability observed when a reservation was refused.
type InsufficientInventoryError struct {
	Requested int
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("not enough seats available: requested %d, available %d", e.Requested, e.Available)
}

func (e *InsufficientInventoryError) Is(target error) bool {
	return target == ErrInsufficientInventory
}

// MissingFieldError names the field an oracle extraction failed to provide.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return e.Field + " is required"
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}

// Validationf builds a validation failure with a caller-facing message.
func Validationf(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrValidation)
}

// Message returns the root cause message, dropping wrap prefixes.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return cr.UnwrapAll(err).Error()
}
