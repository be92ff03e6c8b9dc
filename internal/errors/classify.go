package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedOperation marks an envelope whose operation the pipeline does
// not handle. It is the one failure mode that still acknowledges the message:
// the log offset advances and nothing is persisted.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// ValidationError reports a malformed or incomplete inbound payload. It
// suppresses acknowledgment so the log redelivers the message.
type ValidationError struct {
	Code    ErrorCode
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return GetErrorMessage(e.Code)
	}
	return fmt.Sprintf("%s: %s", GetErrorMessage(e.Code), strings.Join(e.Details, "; "))
}

// NewValidationError creates a validation error with field-level details
func NewValidationError(code ErrorCode, details ...string) *ValidationError {
	return &ValidationError{Code: code, Details: details}
}

// NotFoundError reports a referenced entity that does not exist. Owner
// lookups surface it to the delivery controller; category lookups swallow it.
type NotFoundError struct {
	Code     ErrorCode
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Resource, e.ID, GetErrorMessage(e.Code))
}

// NewNotFoundError creates a not-found error for the given resource
func NewNotFoundError(code ErrorCode, resource string, id uint) *NotFoundError {
	return &NotFoundError{Code: code, Resource: resource, ID: id}
}

// ShouldAcknowledge decides whether the inbound offset may advance after
// processing ended with err. Only a clean commit or the unsupported-operation
// no-op acknowledges; every other failure leaves the message for redelivery.
func ShouldAcknowledge(err error) bool {
	return err == nil || errors.Is(err, ErrUnsupportedOperation)
}

// IsValidation reports whether the error is a payload validation failure
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// IsNotFound reports whether the error is a missing-entity failure
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// CodeFor maps a processing error to its taxonomy code for logging
func CodeFor(err error) ErrorCode {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedOperation):
		return EventUnsupportedOperation
	case IsValidation(err):
		var verr *ValidationError
		errors.As(err, &verr)
		return verr.Code
	case IsNotFound(err):
		var nfe *NotFoundError
		errors.As(err, &nfe)
		return nfe.Code
	default:
		return SystemDatabaseError
	}
}
