// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes raised by the textkit foundation
//              packages. Codes classify failures independently of the
//              human readable message.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Reduced to the codes used by the text utilities

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation and formats
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeEncodingError    Code = "ENCODING_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsClientError reports whether the code describes bad caller input
// rather than a failure inside the library.
func (c Code) IsClientError() bool {
	switch c {
	case CodeInvalidInput, CodeValidationFailed, CodeInvalidFormat, CodeNotFound, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// GetSeverityFromCode returns the default severity for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidInput, CodeValidationFailed, CodeInvalidFormat:
		return SeverityLow
	case CodeInternal, CodeEncodingError:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
