package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Prompt errors
	ErrInputClosed ErrorCode = "INPUT_CLOSED"
	ErrAborted     ErrorCode = "ABORTED"
	ErrPromptIO    ErrorCode = "PROMPT_IO"

	// Template errors
	ErrRender ErrorCode = "RENDER"

	// FileSystem errors
	ErrRootNotFound  ErrorCode = "ROOT_NOT_FOUND"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrPathCollision ErrorCode = "PATH_COLLISION"
)

// HealthError represents a structured error with code and details
type HealthError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HealthError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HealthError) Unwrap() error {
	return e.Wrapped
}

// Is matches any other HealthError carrying the same code
func (e *HealthError) Is(target error) bool {
	var targetErr *HealthError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HealthError with the given code and message
func New(code ErrorCode, message string) *HealthError {
	return &HealthError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HealthError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HealthError {
	return &HealthError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HealthError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &HealthError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message. A nil err yields nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &HealthError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HealthError) WithDetail(key string, value interface{}) *HealthError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var healthErr *HealthError
	if errors.As(err, &healthErr) {
		return healthErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HealthError
func GetErrorCode(err error) ErrorCode {
	var healthErr *HealthError
	if errors.As(err, &healthErr) {
		return healthErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HealthError
func GetErrorDetails(err error) map[string]interface{} {
	var healthErr *HealthError
	if errors.As(err, &healthErr) {
		return healthErr.Details
	}
	return nil
}
