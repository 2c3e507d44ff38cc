// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across helperx.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Include files
	CodeIncludeFailed     Code = "INCLUDE_FAILED"
	CodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"
	CodeParseError        Code = "PARSE_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeWatchFailed   Code = "WATCH_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeIncludeFailed, CodeUnsupportedFormat, CodeParseError:
		return "include"
	case CodeConfigError, CodeMissingConfig, CodeWatchFailed:
		return "configuration"
	case CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}
