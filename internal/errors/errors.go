// Package errors provides structured error types for skillsync.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for skillsync operations.
const (
	// Config errors
	CodeConfigSourceMissing = "CONFIG_001" // Source root does not exist or is not a directory
	CodeConfigParseError    = "CONFIG_002" // Config file could not be parsed
	CodeConfigInvalidValue  = "CONFIG_003" // Invalid value in config file

	// Target errors
	CodeTargetUnknown      = "TARGET_001" // Unrecognized target profile
	CodeTargetInvalidScope = "TARGET_002" // Scope value not global or workspace

	// IO errors
	CodeIOCopyError   = "IO_001" // Copy failed during install
	CodeIORemoveError = "IO_002" // Recursive delete failed
	CodeIOReadError   = "IO_003" // Directory enumeration failed
)

// SyncError is the structured error type for skillsync operations.
type SyncError struct {
	Code    string // Error code (e.g., "TARGET_001")
	Message string // Human-readable message
	Cause   error  // Wrapped error
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *SyncError) Unwrap() error {
	return e.Cause
}

// New creates a new SyncError.
func New(code, message string) *SyncError {
	return &SyncError{Code: code, Message: message}
}

// Newf creates a new SyncError with formatted message.
func Newf(code, format string, args ...any) *SyncError {
	return &SyncError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a SyncError.
func Wrap(code, message string, err error) *SyncError {
	return &SyncError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an error with a formatted SyncError.
func Wrapf(code string, err error, format string, args ...any) *SyncError {
	return &SyncError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// ConfigSourceMissing creates an error for an unresolvable source root.
func ConfigSourceMissing(path string) *SyncError {
	return Newf(CodeConfigSourceMissing, "could not locate source skills directory at %s", path)
}

// ConfigParseError creates an error for an unreadable config file.
func ConfigParseError(path string, err error) *SyncError {
	return Wrapf(CodeConfigParseError, err, "failed to parse config file %s", path)
}

// TargetUnknown creates an error for an unrecognized target profile.
func TargetUnknown(target string, known []string) *SyncError {
	return Newf(CodeTargetUnknown, "invalid target %q: valid targets are %v", target, known)
}

// IOCopyError creates an error for a failed skill copy.
func IOCopyError(skill string, err error) *SyncError {
	return Wrapf(CodeIOCopyError, err, "error installing %s", skill)
}

// IORemoveError creates an error for a failed skill removal.
func IORemoveError(skill string, err error) *SyncError {
	return Wrapf(CodeIORemoveError, err, "error removing %s", skill)
}

// IOReadError creates an error for a failed directory read.
func IOReadError(path string, err error) *SyncError {
	return Wrapf(CodeIOReadError, err, "failed to read directory %s", path)
}

// HasCode checks if an error is a SyncError with the given code.
// It handles wrapped errors by unwrapping to find a SyncError.
func HasCode(err error, code string) bool {
	var serr *SyncError
	if errors.As(err, &serr) {
		return serr.Code == code
	}
	return false
}

// Code returns the error code if err is a SyncError, empty string otherwise.
func Code(err error) string {
	var serr *SyncError
	if errors.As(err, &serr) {
		return serr.Code
	}
	return ""
}
