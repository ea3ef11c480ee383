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
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Widget and resolution errors
	ErrWidgetNotFound ErrorCode = "WIDGET_NOT_FOUND"
	ErrWidgetAccess   ErrorCode = "WIDGET_ACCESS"
	ErrNoVariant      ErrorCode = "NO_VARIANT"
	ErrMappingInvalid ErrorCode = "MAPPING_INVALID"

	// Installation errors
	ErrFileCopy  ErrorCode = "FILE_COPY"
	ErrBackup    ErrorCode = "BACKUP"
	ErrDirCreate ErrorCode = "DIR_CREATE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Repository registry errors
	ErrRepoNotFound ErrorCode = "REPO_NOT_FOUND"
	ErrRepoExists   ErrorCode = "REPO_EXISTS"
	ErrRepoInvalid  ErrorCode = "REPO_INVALID"
	ErrGitClone     ErrorCode = "GIT_CLONE"
	ErrGitPull      ErrorCode = "GIT_PULL"

	// Pull errors
	ErrTooManyConfigs ErrorCode = "TOO_MANY_CONFIGS"
	ErrPullCancelled  ErrorCode = "PULL_CANCELLED"
)

// DotvarError represents a structured error with code and details
type DotvarError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotvarError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotvarError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotvarError) Is(target error) bool {
	var targetErr *DotvarError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotvarError with the given code and message
func New(code ErrorCode, message string) *DotvarError {
	return &DotvarError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotvarError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotvarError {
	return &DotvarError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotvarError
func Wrap(err error, code ErrorCode, message string) *DotvarError {
	if err == nil {
		return nil
	}
	return &DotvarError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotvarError {
	if err == nil {
		return nil
	}
	return &DotvarError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotvarError) WithDetail(key string, value interface{}) *DotvarError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dvErr *DotvarError
	if errors.As(err, &dvErr) {
		return dvErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotvarError
func GetErrorCode(err error) ErrorCode {
	var dvErr *DotvarError
	if errors.As(err, &dvErr) {
		return dvErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotvarError
func GetErrorDetails(err error) map[string]interface{} {
	var dvErr *DotvarError
	if errors.As(err, &dvErr) {
		return dvErr.Details
	}
	return nil
}
