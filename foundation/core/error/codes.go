// File: codes.go
// Title: Error Code Definitions
// Description: Defines structured error codes for categorizing errors across
//              the ModOne toolkit. Codes cover generic failures plus the
//              ladder, address, and mapping domains.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-10
//
// Change History:
// - 2026-08-10 v0.1.0: Initial error code set

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the ModOne toolkit
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Ladder source processing
	CodeLadderSyntax   Code = "LADDER_SYNTAX"
	CodeLadderSemantic Code = "LADDER_SEMANTIC"
	CodeLadderEmpty    Code = "LADDER_EMPTY"

	// Device addressing
	CodeAddressFormat Code = "ADDRESS_FORMAT"
	CodeAddressRange  Code = "ADDRESS_RANGE"
	CodeBitRange      Code = "BIT_RANGE"
	CodeIndexRange    Code = "INDEX_RANGE"

	// Modbus mapping
	CodeMapUnresolved Code = "MAP_UNRESOLVED"
	CodeMapNoRule     Code = "MAP_NO_RULE"
	CodeTargetFormat  Code = "TARGET_FORMAT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLadderSyntax, CodeLadderSemantic, CodeLadderEmpty,
		CodeAddressFormat, CodeAddressRange, CodeBitRange, CodeIndexRange,
		CodeMapUnresolved, CodeMapNoRule, CodeTargetFormat,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed, CodeValueOutOfRange, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLadderSyntax, CodeLadderSemantic, CodeLadderEmpty:
		return "ladder"
	case CodeAddressFormat, CodeAddressRange, CodeBitRange, CodeIndexRange:
		return "address"
	case CodeMapUnresolved, CodeMapNoRule, CodeTargetFormat:
		return "mapping"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeValueOutOfRange, CodeInvalidFormat:
		return "validation"
	default:
		return "generic"
	}
}
