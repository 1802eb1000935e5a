package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeInvalidInput    ErrorType = "INVALID_INPUT"
	ErrTypeUnauthenticated ErrorType = "UNAUTHENTICATED"
	ErrTypeForbidden       ErrorType = "FORBIDDEN"
	ErrTypeNotFound        ErrorType = "NOT_FOUND"
	ErrTypeConflict        ErrorType = "CONFLICT"
	ErrTypeInternal        ErrorType = "INTERNAL"
)

type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

// HTTPStatus maps the error type to the response status. Conflict maps to
// 400, matching the duplicate-application and duplicate-company responses.
func (e *DomainError) HTTPStatus() int {
	switch e.Type {
	case ErrTypeInvalidInput, ErrTypeConflict:
		return http.StatusBadRequest
	case ErrTypeUnauthenticated:
		return http.StatusUnauthorized
	case ErrTypeForbidden:
		return http.StatusForbidden
	case ErrTypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func InvalidInput(message string, err error) *DomainError {
	return New(ErrTypeInvalidInput, message, err)
}

func Unauthenticated(message string, err error) *DomainError {
	return New(ErrTypeUnauthenticated, message, err)
}

func Forbidden(message string, err error) *DomainError {
	return New(ErrTypeForbidden, message, err)
}

func NotFound(message string, err error) *DomainError {
	return New(ErrTypeNotFound, message, err)
}

func Conflict(message string, err error) *DomainError {
	return New(ErrTypeConflict, message, err)
}

func Internal(message string, err error) *DomainError {
	return New(ErrTypeInternal, message, err)
}

// AsDomain unwraps err into a DomainError, falling back to Internal so every
// failure still resolves to a well-formed response.
func AsDomain(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return Internal("Server error. Please try again later.", err)
}
