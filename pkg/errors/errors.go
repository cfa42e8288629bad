package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category independently of its message
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad       ErrorCode = "CONFIG_LOAD"
	ErrConfigParse      ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrManifestNotFound ErrorCode = "MANIFEST_NOT_FOUND"

	// Package repository errors
	ErrInstalledRead ErrorCode = "INSTALLED_READ"

	// Provisioning errors, one per non-created installer outcome
	ErrSourceMissing  ErrorCode = "SOURCE_MISSING"
	ErrTargetOccupied ErrorCode = "TARGET_OCCUPIED"
	ErrDirCreate      ErrorCode = "DIR_CREATE"
	ErrSymlinkCreate  ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkRemove  ErrorCode = "SYMLINK_REMOVE"
)

// LinkError is a structured error with a stable code and free-form details
type LinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LinkError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a LinkError with the same code
func (e *LinkError) Is(target error) bool {
	var targetErr *LinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LinkError with the given code and message
func New(code ErrorCode, message string) *LinkError {
	return &LinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LinkError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *LinkError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LinkError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *LinkError) WithDetail(key string, value interface{}) *LinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var linkErr *LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LinkError
func GetErrorCode(err error) ErrorCode {
	var linkErr *LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LinkError
func GetErrorDetails(err error) map[string]interface{} {
	var linkErr *LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Details
	}
	return nil
}
