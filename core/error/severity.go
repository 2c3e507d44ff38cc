// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels attached to structured errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates invalid user input or a missing optional value
	SeverityLow Severity = iota

	// SeverityMedium indicates an operation failed but the process can continue
	SeverityMedium

	// SeverityHigh indicates a failure the caller is unlikely to recover from
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
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
