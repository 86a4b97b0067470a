// File: doc.go
// Title: Log Package Documentation
// Description: Package documentation for the structured logging system.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-10
//
// Change History:
// - 2026-08-10 v0.1.0: Initial documentation

// Package log provides structured, leveled logging for the ModOne toolkit.
//
// Components receive a *Logger through their Options and derive child
// loggers with WithField/WithName; nothing in the core writes to a
// hard-wired sink. The CLI configures the default logger once at startup:
//
//	molog.SetDefault(molog.NewWithConfig(molog.Config{
//		Level:  molog.LevelDebug,
//		Format: molog.FormatText,
//		Output: os.Stderr,
//	}))
package log
