package utils

import "fmt"

type ErrorCode int

const (
	// Error code definitions
	ErrUnknown ErrorCode = iota
	ErrFileNotFound
	ErrInvalidConfig
	ErrCopy
	ErrInput
)

// Returns a short name for the error code
func (c ErrorCode) String() string {
	switch c {
	case ErrFileNotFound:
		return "file not found"
	case ErrInvalidConfig:
		return "invalid config"
	case ErrCopy:
		return "copy"
	case ErrInput:
		return "input"
	default:
		return "unknown"
	}
}

// Represents an application error with context
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Returns the error message
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Creates a new application error
func NewError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Creates an error for a path that could not be found or read
func NewFileNotFoundError(path string, err error) *AppError {
	return NewError(ErrFileNotFound, fmt.Sprintf("reading %s", path), err)
}
