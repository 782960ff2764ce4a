// Package errors provides structured error types for licensetracker.
//
// This package defines error codes and types that enable:
//   - Telling recoverable outcomes (no license found) apart from fatal ones
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input and configuration validation failures
//   - *_NOT_FOUND: Lookups that came back empty
//   - NETWORK_*: Network-related errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeProjectURLNotFound, "Could not find project url")
//	if errors.Is(err, errors.ErrCodeProjectURLNotFound) {
//	    // Handle missing repository
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMetadataFetch, origErr, "fetch %s", name)
//
// The only error the analysis pipeline recovers from is [NoLicenseFoundError];
// every other error aborts a run.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidPackage Code = "INVALID_PACKAGE"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"

	// Lookup errors
	ErrCodeMetadataFetch      Code = "METADATA_FETCH"
	ErrCodeProjectURLNotFound Code = "PROJECT_URL_NOT_FOUND"
	ErrCodeNoLicenseFound     Code = "NO_LICENSE_FOUND"
	ErrCodeVersionMismatch    Code = "VERSION_MISMATCH"

	// Network errors
	ErrCodeNetwork Code = "NETWORK_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or a [NoLicenseFoundError]
// with a matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error carries no code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var nl *NoLicenseFoundError
	if errors.As(err, &nl) {
		return nl.Code()
	}
	return ""
}

// NoLicenseFoundError reports that no license file could be located for a
// package at a version. It is the only recoverable failure of an analysis:
// callers skip the package and carry on with the rest of the batch.
type NoLicenseFoundError struct {
	Name    string // Package name (may be empty when raised below the analyzer)
	Version string // Version that was looked up
	Reason  string // Short human-readable reason
	Cause   error  // Listing error, if the listing itself failed
}

// Error implements the error interface.
func (e *NoLicenseFoundError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = "no license found"
	}
	if e.Name != "" {
		msg = fmt.Sprintf("%s: %s (%s)", msg, e.Name, e.Version)
	} else if e.Version != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Version)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the listing error that caused the lookup to fail, if any.
func (e *NoLicenseFoundError) Unwrap() error { return e.Cause }

// Code returns the error code for this error type.
func (e *NoLicenseFoundError) Code() Code { return ErrCodeNoLicenseFound }

// AsNoLicenseFound extracts a [NoLicenseFoundError] from err's chain.
func AsNoLicenseFound(err error) (*NoLicenseFoundError, bool) {
	var nl *NoLicenseFoundError
	if errors.As(err, &nl) {
		return nl, true
	}
	return nil, false
}
