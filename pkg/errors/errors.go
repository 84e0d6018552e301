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
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Collection errors
	ErrBackendNotFound ErrorCode = "BACKEND_NOT_FOUND"
	ErrCollectFailed   ErrorCode = "COLLECT_FAILED"

	// Snapshot store errors
	ErrSnapshotRead  ErrorCode = "SNAPSHOT_READ"
	ErrSnapshotWrite ErrorCode = "SNAPSHOT_WRITE"
	ErrSnapshotParse ErrorCode = "SNAPSHOT_PARSE"

	// Notification errors
	ErrDeliveryFailed ErrorCode = "DELIVERY_FAILED"
)

// MonitorError represents a structured error with code and details
type MonitorError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MonitorError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MonitorError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MonitorError) Is(target error) bool {
	var targetErr *MonitorError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MonitorError with the given code and message
func New(code ErrorCode, message string) *MonitorError {
	return &MonitorError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MonitorError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MonitorError {
	return &MonitorError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MonitorError
func Wrap(err error, code ErrorCode, message string) *MonitorError {
	if err == nil {
		return nil
	}
	return &MonitorError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MonitorError {
	if err == nil {
		return nil
	}
	return &MonitorError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MonitorError) WithDetail(key string, value interface{}) *MonitorError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var monErr *MonitorError
	if errors.As(err, &monErr) {
		return monErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MonitorError
func GetErrorCode(err error) ErrorCode {
	var monErr *MonitorError
	if errors.As(err, &monErr) {
		return monErr.Code
	}
	return ErrUnknown
}
