// File: doc.go
// Title: Parser Package Documentation
// Description: Package overview for the instruction stream parser.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial documentation

// Package parser reconstructs ladder logic trees from flat mnemonic
// instruction rows.
//
// Mnemonic exports serialize each rung as a postfix-like instruction
// stream: LOAD-family rows open branches, AND/OR-family rows extend
// them, and ANDB/ORB combine completed sub-blocks. The Parser replays
// that stream on a stack and hands back the rung's logic tree through
// Result. Rows the parser cannot use (unknown mnemonics, malformed
// operands) are logged and skipped rather than failing the rung; the
// validator reports on what remains.
//
// A single Parser carries a monotonically increasing node identifier
// counter across Reset calls, so identifiers are unique per program,
// not per rung.
package parser
