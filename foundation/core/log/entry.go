// File: entry.go
// Title: Log Entry and Field Types
// Description: Defines the log Entry structure and the Fields helpers used
//              for structured key-value logging.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-10
//
// Change History:
// - 2026-08-10 v0.1.0: Initial entry and fields implementation

package log

import (
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	// Core log information
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	// Custom fields
	Fields Fields

	// Error information
	Error error

	// Caller information (optional, for debugging)
	Caller *CallerInfo
}

// CallerInfo contains information about where the log was called from
type CallerInfo struct {
	Function string
	File     string
	Line     int
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// Int creates an integer field for logging
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// String creates a string field for logging
func String(key, value string) Fields {
	return Fields{key: value}
}

// merge combines multiple field maps, later maps winning on key collisions
func merge(fieldMaps ...Fields) Fields {
	combined := make(Fields)
	for _, fields := range fieldMaps {
		for k, v := range fields {
			combined[k] = v
		}
	}
	return combined
}
