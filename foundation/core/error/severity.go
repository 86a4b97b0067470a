// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors and the mapping from error
//              codes to default severities. Severity drives logging and
//              report presentation, never control flow.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-10
//
// Change History:
// - 2026-08-10 v0.1.0: Initial severity implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: a skipped malformed row, a missing optional comment
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: an unmappable address, a degraded parse
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: an unreadable configuration file, an invalid program
	SeverityHigh

	// SeverityCritical indicates an error that makes the toolkit unusable
	// Examples: corrupted internal state, impossible invariants
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

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// High severity errors
	case CodeInternal, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	// Medium severity errors
	case CodeLadderSyntax, CodeLadderSemantic, CodeValidationFailed,
		CodeMapUnresolved, CodeMapNoRule,
		CodeAddressRange, CodeBitRange, CodeIndexRange, CodeValueOutOfRange:
		return SeverityMedium

	// Low severity errors
	case CodeLadderEmpty, CodeAddressFormat, CodeTargetFormat,
		CodeInvalidFormat, CodeNotFound, CodeInvalidInput:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
