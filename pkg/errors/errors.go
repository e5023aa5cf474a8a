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
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrTargetNotFound ErrorCode = "TARGET_NOT_FOUND"

	// Validation errors
	ErrCycleDetected     ErrorCode = "CYCLE_DETECTED"
	ErrWildcardInvalid   ErrorCode = "WILDCARD_INVALID"
	ErrInvalidVariable   ErrorCode = "INVALID_VARIABLE"
	ErrMissingDependency ErrorCode = "MISSING_DEPENDENCY"

	// Execution errors
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"
	ErrCommandSpawn  ErrorCode = "COMMAND_SPAWN"
)

// TokeError represents a structured error with code and details
type TokeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TokeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TokeError) Unwrap() error {
	return e.Wrapped
}

// New creates a new TokeError with the given code and message
func New(code ErrorCode, message string) *TokeError {
	return &TokeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TokeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TokeError {
	return &TokeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TokeError
func Wrap(err error, code ErrorCode, message string) *TokeError {
	if err == nil {
		return nil
	}
	return &TokeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TokeError {
	if err == nil {
		return nil
	}
	return &TokeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TokeError) WithDetail(key string, value interface{}) *TokeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tokeErr *TokeError
	if errors.As(err, &tokeErr) {
		return tokeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TokeError
func GetErrorCode(err error) ErrorCode {
	var tokeErr *TokeError
	if errors.As(err, &tokeErr) {
		return tokeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TokeError
func GetErrorDetails(err error) map[string]interface{} {
	var tokeErr *TokeError
	if errors.As(err, &tokeErr) {
		return tokeErr.Details
	}
	return nil
}

// ExitCode maps an error to the process exit status. Every failure exits 1;
// the exit code of a failed child command is kept in the error details.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
