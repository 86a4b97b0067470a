// File: doc.go
// Title: Error Package Documentation
// Description: Package documentation for the structured error system.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-10
//
// Change History:
// - 2026-08-10 v0.1.0: Initial documentation

// Package error provides a structured error system for the ModOne toolkit.
//
// Errors carry a code, a severity, arbitrary key-value details, and a
// captured stack trace, while remaining ordinary Go errors that participate
// in errors.Is/As unwrapping.
//
// Usage:
//
//	err := moerror.New("address number out of range").
//		WithCode(moerror.CodeAddressRange).
//		WithDetail("address", "P2048").
//		WithOperation("validate")
//
// Wrapping preserves the code and severity of an inner ModOne error:
//
//	if err := loadRules(path); err != nil {
//		return moerror.Wrap(err, "loading mapping rules")
//	}
package error
