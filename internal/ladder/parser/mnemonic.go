// File: mnemonic.go
// Title: Mnemonic Classification
// Description: Classifies instruction mnemonics into their families and
//              variants, extracts comparison operators from prefixed
//              comparison forms, and interprets operand strings. The
//              mnemonic table is a closed enumeration; unknown mnemonics
//              classify as no family and are skipped by the parser.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial mnemonic table

package parser

import (
	"strconv"
	"strings"

	moast "github.com/WKDev/ModOne-sub002/internal/ladder/ast"
	modevice "github.com/WKDev/ModOne-sub002/internal/ladder/device"
)

// Family groups mnemonics by their parser transition rule
type Family int

const (
	// FamilyLoad starts a new logic branch (push)
	FamilyLoad Family = iota

	// FamilyAnd combines in series with the stack top
	FamilyAnd

	// FamilyOr registers a pending parallel branch
	FamilyOr

	// FamilyAndBlock combines the two topmost stack items in series
	FamilyAndBlock

	// FamilyOrBlock combines the two topmost stack items in parallel
	FamilyOrBlock

	// FamilyOut emits an output coil (no stack interaction)
	FamilyOut

	// FamilyTimer emits a timer (no stack interaction)
	FamilyTimer

	// FamilyCounter emits a counter (no stack interaction)
	FamilyCounter

	// FamilyMath emits an arithmetic or move operation (no stack interaction)
	FamilyMath

	// FamilyUnknown marks an unrecognized mnemonic
	FamilyUnknown
)

// String returns a name for the family
func (f Family) String() string {
	switch f {
	case FamilyLoad:
		return "load"
	case FamilyAnd:
		return "and"
	case FamilyOr:
		return "or"
	case FamilyAndBlock:
		return "and-block"
	case FamilyOrBlock:
		return "or-block"
	case FamilyOut:
		return "out"
	case FamilyTimer:
		return "timer"
	case FamilyCounter:
		return "counter"
	case FamilyMath:
		return "math"
	default:
		return "unknown"
	}
}

// Mnemonic is the classification result for one instruction
type Mnemonic struct {
	Family  Family
	Contact moast.ContactKind
	Coil    moast.CoilKind
	Timer   moast.TimerKind
	Counter moast.CounterKind
	Math    moast.MathOp

	// Comparison form (LD=, AND>, OR<= and so on)
	IsCompare bool
	Compare   moast.CompareOp
}

// exact holds all mnemonics that classify without operator extraction.
// LD-prefixed spellings are aliases of the LOAD family; both occur in
// real exports.
var exact = map[string]Mnemonic{
	"LOAD":  {Family: FamilyLoad, Contact: moast.ContactNO},
	"LOADN": {Family: FamilyLoad, Contact: moast.ContactNC},
	"LOADP": {Family: FamilyLoad, Contact: moast.ContactRising},
	"LOADF": {Family: FamilyLoad, Contact: moast.ContactFalling},
	"LD":    {Family: FamilyLoad, Contact: moast.ContactNO},
	"LDN":   {Family: FamilyLoad, Contact: moast.ContactNC},
	"LDP":   {Family: FamilyLoad, Contact: moast.ContactRising},
	"LDF":   {Family: FamilyLoad, Contact: moast.ContactFalling},

	"AND":  {Family: FamilyAnd, Contact: moast.ContactNO},
	"ANDN": {Family: FamilyAnd, Contact: moast.ContactNC},
	"ANDP": {Family: FamilyAnd, Contact: moast.ContactRising},
	"ANDF": {Family: FamilyAnd, Contact: moast.ContactFalling},

	"OR":  {Family: FamilyOr, Contact: moast.ContactNO},
	"ORN": {Family: FamilyOr, Contact: moast.ContactNC},
	"ORP": {Family: FamilyOr, Contact: moast.ContactRising},
	"ORF": {Family: FamilyOr, Contact: moast.ContactFalling},

	"ANDB": {Family: FamilyAndBlock},
	"ORB":  {Family: FamilyOrBlock},

	"OUT": {Family: FamilyOut, Coil: moast.CoilOut},
	"SET": {Family: FamilyOut, Coil: moast.CoilSet},
	"RST": {Family: FamilyOut, Coil: moast.CoilReset},

	"TON": {Family: FamilyTimer, Timer: moast.TimerOnDelay},
	"TOF": {Family: FamilyTimer, Timer: moast.TimerOffDelay},
	"TMR": {Family: FamilyTimer, Timer: moast.TimerAccumulating},

	"CTU":  {Family: FamilyCounter, Counter: moast.CounterUp},
	"CTD":  {Family: FamilyCounter, Counter: moast.CounterDown},
	"CTUD": {Family: FamilyCounter, Counter: moast.CounterUpDown},

	"MOV": {Family: FamilyMath, Math: moast.MathMove},
	"ADD": {Family: FamilyMath, Math: moast.MathAdd},
	"SUB": {Family: FamilyMath, Math: moast.MathSub},
	"MUL": {Family: FamilyMath, Math: moast.MathMul},
	"DIV": {Family: FamilyMath, Math: moast.MathDiv},
}

// comparePrefixes maps comparison mnemonic prefixes to their family.
// Longer prefixes are checked first so LOAD= never matches the OR prefix
// hidden inside it.
var comparePrefixes = []struct {
	prefix string
	family Family
}{
	{"LOAD", FamilyLoad},
	{"AND", FamilyAnd},
	{"LD", FamilyLoad},
	{"OR", FamilyOr},
}

// compareOps lists operators longest-match-first so >= never reads as >
var compareOps = []struct {
	text string
	op   moast.CompareOp
}{
	{">=", moast.CompareGE},
	{"<=", moast.CompareLE},
	{"<>", moast.CompareNE},
	{"=", moast.CompareEQ},
	{">", moast.CompareGT},
	{"<", moast.CompareLT},
}

// Lookup classifies an instruction mnemonic. The second return value is
// false for unknown mnemonics.
func Lookup(instr string) (Mnemonic, bool) {
	if m, ok := exact[instr]; ok {
		return m, true
	}

	// Comparison forms: family prefix followed by exactly one operator
	for _, p := range comparePrefixes {
		if !strings.HasPrefix(instr, p.prefix) {
			continue
		}
		rest := instr[len(p.prefix):]
		for _, c := range compareOps {
			if rest == c.text {
				return Mnemonic{Family: p.family, IsCompare: true, Compare: c.op}, true
			}
		}
	}

	return Mnemonic{Family: FamilyUnknown}, false
}

// ParseOperand interprets an operand string as, in order of preference, a
// signed decimal integer, a hex integer (H or 0x prefix), or a device
// address. The first successful interpretation wins.
func ParseOperand(s string) (moast.Operand, bool) {
	if s == "" {
		return moast.Operand{}, false
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return moast.ImmediateOperand(v), true
	}

	if v, ok := parseHex(s); ok {
		return moast.ImmediateOperand(v), true
	}

	if addr, err := modevice.Parse(s); err == nil {
		return moast.AddressOperand(addr), true
	}

	return moast.Operand{}, false
}

// ParseImmediate interprets an operand string as a numeric literal only
func ParseImmediate(s string) (int64, bool) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, true
	}
	return parseHex(s)
}

// parseHex parses H- and 0x-prefixed hex literals
func parseHex(s string) (int64, bool) {
	var digits string
	switch {
	case strings.HasPrefix(s, "H") || strings.HasPrefix(s, "h"):
		digits = s[1:]
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		digits = s[2:]
	default:
		return 0, false
	}

	v, err := strconv.ParseInt(digits, 16, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
