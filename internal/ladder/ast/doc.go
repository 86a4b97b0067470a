// File: doc.go
// Title: AST Package Documentation
// Description: Package documentation for the ladder logic AST.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial documentation

// Package ast defines the node types of a parsed ladder program.
//
// A network's logic is a tree: leaves are contacts, comparisons, and the
// output-class elements (coils, timers, counters) plus arithmetic/move
// operations; interior nodes are Blocks combining children in series (AND)
// or parallel (OR). Trees are acyclic and builder-owned; nodes are not
// mutated after the program is published except by full replacement.
package ast
