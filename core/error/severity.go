// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for console errors so hosts can decide
//              how loudly to report a failure. Most console errors are benign
//              user-input problems; severities keep them distinguishable from
//              real defects.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-12
// Modified: 2025-09-12
//
// Change History:
// - 2025-09-12 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates an expected, user-recoverable failure
	// Examples: unknown target, too many arguments, oversized input
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure that suggests a host wiring problem
	// Examples: type mismatches between registration and typed access
	SeverityMedium

	// SeverityHigh indicates a failure that should not occur in correct use
	// Examples: internal invariant violations
	SeverityHigh
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
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity
func (s Severity) Level() int {
	return int(s)
}

// SeverityFromCode returns the default severity for a code
func SeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh
	case CodeTypeMismatch:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
