package services

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	// ErrorKindClientInput is a problem with what the caller sent.
	ErrorKindClientInput ErrorKind = "client_input"
	// ErrorKindUpstream is a failure reading, parsing, or calling the LLM.
	ErrorKindUpstream ErrorKind = "upstream_processing"
)

var (
	ErrMissingFile       = errors.New("no file supplied")
	ErrUnsupportedFormat = errors.New("unsupported file extension")
	ErrFileTooLarge      = errors.New("file exceeds the size limit")
	ErrNoText            = errors.New("extracted text is empty")
)

// AppError carries a user-facing message and the category it belongs to.
type AppError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewClientInputError(message string, cause error) *AppError {
	return &AppError{
		Kind:    ErrorKindClientInput,
		Message: message,
		Cause:   cause,
	}
}

func NewUpstreamError(message string, cause error) *AppError {
	return &AppError{
		Kind:    ErrorKindUpstream,
		Message: message,
		Cause:   cause,
	}
}

// IsClientInput reports whether err is, or wraps, a client input AppError.
func IsClientInput(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == ErrorKindClientInput
}
