// File: report.go
// Title: Validation Report
// Description: Report and issue types for the ladder program validator.
//              Errors make a program invalid; warnings never do.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-16
// Modified: 2026-08-16
//
// Change History:
// - 2026-08-16 v0.1.0: Initial report types

package validate

import (
	"fmt"

	moerror "github.com/WKDev/ModOne-sub002/foundation/core/error"
)

// Issue is one reported problem, attributable to a network and node
type Issue struct {
	// Code classifies the problem
	Code moerror.Code

	// Severity grades the problem
	Severity moerror.Severity

	// Step is the network's step number, or 0 for program-wide issues
	Step int

	// NodeID identifies the offending node, or 0 for network-wide issues
	NodeID int

	// Message describes the problem
	Message string
}

// String renders the issue for reports and logs
func (i Issue) String() string {
	switch {
	case i.NodeID != 0:
		return fmt.Sprintf("[%s] step %d node %d: %s", i.Code, i.Step, i.NodeID, i.Message)
	case i.Step != 0:
		return fmt.Sprintf("[%s] step %d: %s", i.Code, i.Step, i.Message)
	default:
		return fmt.Sprintf("[%s] %s", i.Code, i.Message)
	}
}

// Report is the validator's result
type Report struct {
	Errors   []Issue
	Warnings []Issue
}

// Valid reports whether the program passed: zero errors. Warnings never
// affect validity.
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

// Len returns the total number of reported issues
func (r *Report) Len() int {
	return len(r.Errors) + len(r.Warnings)
}

func (r *Report) addError(code moerror.Code, step, nodeID int, format string, args ...interface{}) {
	r.Errors = append(r.Errors, Issue{
		Code:     code,
		Severity: moerror.SeverityHigh,
		Step:     step,
		NodeID:   nodeID,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Report) addWarning(code moerror.Code, step, nodeID int, format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, Issue{
		Code:     code,
		Severity: moerror.SeverityLow,
		Step:     step,
		NodeID:   nodeID,
		Message:  fmt.Sprintf(format, args...),
	})
}
