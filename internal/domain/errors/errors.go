package errors

import "fmt"

// Kind classifies an AppError for transport mapping.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindInternal
)

// AppError represents a domain-specific error
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewValidationError(code, message string) *AppError {
	return &AppError{Kind: KindValidation, Code: code, Message: message}
}

func NewNotFoundError(code, message string) *AppError {
	return &AppError{Kind: KindNotFound, Code: code, Message: message}
}

func NewUnauthorizedError(code, message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Code: code, Message: message}
}

func NewForbiddenError(code, message string) *AppError {
	return &AppError{Kind: KindForbidden, Code: code, Message: message}
}

func NewInternalError(code, message string) *AppError {
	return &AppError{Kind: KindInternal, Code: code, Message: message}
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}
