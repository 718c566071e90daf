// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to rank errors when they are
//              reported or logged.
// Author: msto63
// Version: v0.1.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks bad input the caller can correct
	SeverityLow Severity = iota

	// SeverityMedium marks a failed operation with a workaround
	SeverityMedium

	// SeverityHigh marks a failure inside the library
	SeverityHigh

	// SeverityCritical marks an unrecoverable failure
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}
