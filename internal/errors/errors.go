package errors

import (
	"errors"
	"fmt"
)

const (
	ErrInternalError   ErrorType = "internal error"
	ErrInvalidArgument ErrorType = "invalid argument"
	ErrFailedPrecond   ErrorType = "failed precondition"
)

type ErrorType string

// DomainError carries the error category along with the entity it belongs to.
type DomainError struct {
	ErrorType ErrorType
	Entity    string
	Message   string

	WrappedErr error
}

func NewError(errType ErrorType, entity, message string) *DomainError {
	return &DomainError{
		ErrorType: errType,
		Entity:    entity,
		Message:   message,
	}
}

func InvalidArgument(entity, message string) *DomainError {
	return NewError(ErrInvalidArgument, entity, message)
}

func FailedPrecondition(entity, message string) *DomainError {
	return NewError(ErrFailedPrecond, entity, message)
}

// Wrap keeps err reachable through Unwrap while adding entity context.
// The wrapper carries the wrapped error's category, so IsErrorType keeps
// matching through it; errors from outside the package are treated as
// internal.
func Wrap(entity, message string, err error) error {
	return &DomainError{
		ErrorType:  typeFor(err),
		Entity:     entity,
		Message:    message,
		WrappedErr: err,
	}
}

func (e *DomainError) Error() string {
	if e.WrappedErr == nil {
		return fmt.Sprintf("%s for entity %s: %s", e.ErrorType, e.Entity, e.Message)
	}
	return fmt.Sprintf("%s for entity %s: %s: %s", e.ErrorType, e.Entity, e.Message, e.WrappedErr)
}

func (e *DomainError) Unwrap() error {
	return e.WrappedErr
}

func IsErrorType(err error, errType ErrorType) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.ErrorType == errType
	}
	return false
}

func typeFor(err error) ErrorType {
	var de *DomainError
	if errors.As(err, &de) {
		return de.ErrorType
	}
	return ErrInternalError
}
