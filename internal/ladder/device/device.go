// File: device.go
// Title: Device Address Model
// Description: Defines the closed device-type enumeration and the Address
//              type with its string parsing and formatting. Address strings
//              follow the native export form <Letter><4-digit number> with
//              optional bit access (.<bit>) and index register ([Z<n>]).
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-11
// Modified: 2026-08-11
//
// Change History:
// - 2026-08-11 v0.1.0: Initial device address implementation

package device

import (
	"fmt"
	"strconv"

	moerror "github.com/WKDev/ModOne-sub002/foundation/core/error"
)

// Type represents a device class of the native address space
type Type int

const (
	// TypeP is the I/O relay (bit device)
	TypeP Type = iota

	// TypeM is the auxiliary relay (bit device)
	TypeM

	// TypeK is the keep relay, retained across power cycles (bit device)
	TypeK

	// TypeF is the special relay, set by hardware and logic (bit device, read-only)
	TypeF

	// TypeT is the timer contact (bit device with a word current value)
	TypeT

	// TypeC is the counter contact (bit device with a word current value)
	TypeC

	// TypeD is the data register (word device)
	TypeD

	// TypeR is the file register (word device)
	TypeR

	// TypeZ is the index register (word device)
	TypeZ

	// TypeN is the input data register, sampled by hardware (word device, read-only)
	TypeN
)

// Types lists all device types in declaration order
var Types = []Type{TypeP, TypeM, TypeK, TypeF, TypeT, TypeC, TypeD, TypeR, TypeZ, TypeN}

// String returns the device letter for the type
func (t Type) String() string {
	switch t {
	case TypeP:
		return "P"
	case TypeM:
		return "M"
	case TypeK:
		return "K"
	case TypeF:
		return "F"
	case TypeT:
		return "T"
	case TypeC:
		return "C"
	case TypeD:
		return "D"
	case TypeR:
		return "R"
	case TypeZ:
		return "Z"
	case TypeN:
		return "N"
	default:
		return "?"
	}
}

// IsBit returns true for inherently boolean device classes
func (t Type) IsBit() bool {
	switch t {
	case TypeP, TypeM, TypeK, TypeF, TypeT, TypeC:
		return true
	default:
		return false
	}
}

// IsWord returns true for word-storage device classes
func (t Type) IsWord() bool {
	return !t.IsBit()
}

// IsReadOnly returns true for device classes whose state is derived by
// hardware or logic and cannot be written by the program
func (t Type) IsReadOnly() bool {
	return t == TypeF || t == TypeN
}

// ParseType parses a device letter into a Type
func ParseType(letter byte) (Type, bool) {
	switch letter {
	case 'P', 'p':
		return TypeP, true
	case 'M', 'm':
		return TypeM, true
	case 'K', 'k':
		return TypeK, true
	case 'F', 'f':
		return TypeF, true
	case 'T', 't':
		return TypeT, true
	case 'C', 'c':
		return TypeC, true
	case 'D', 'd':
		return TypeD, true
	case 'R', 'r':
		return TypeR, true
	case 'Z', 'z':
		return TypeZ, true
	case 'N', 'n':
		return TypeN, true
	default:
		return TypeP, false
	}
}

// NoBit marks an absent bit or index component of an Address
const NoBit = -1

// Address identifies one native device location.
//
// Bit and Index are NoBit when absent. A Bit on a word device addresses a
// single bit of the word's storage; an Index marks the address as computed
// at runtime from the index register and therefore not statically
// resolvable.
type Address struct {
	Type  Type
	Num   int
	Bit   int
	Index int
}

// NewAddress creates an Address without bit or index components
func NewAddress(t Type, num int) Address {
	return Address{Type: t, Num: num, Bit: NoBit, Index: NoBit}
}

// WithBit returns a copy of the address with the given bit component
func (a Address) WithBit(bit int) Address {
	a.Bit = bit
	return a
}

// WithIndex returns a copy of the address with the given index register
func (a Address) WithIndex(index int) Address {
	a.Index = index
	return a
}

// HasBit returns true if the address carries a bit component
func (a Address) HasBit() bool {
	return a.Bit != NoBit
}

// HasIndex returns true if the address is index-register modified
func (a Address) HasIndex() bool {
	return a.Index != NoBit
}

// String formats the address in canonical form: the device letter, the
// numeric part zero-padded to 4 digits, then the optional bit and index
// components. The output round-trips exactly through Parse.
func (a Address) String() string {
	s := fmt.Sprintf("%s%04d", a.Type, a.Num)
	if a.HasBit() {
		s += "." + strconv.Itoa(a.Bit)
	}
	if a.HasIndex() {
		s += "[Z" + strconv.Itoa(a.Index) + "]"
	}
	return s
}

// Parse parses a device address string.
//
// Accepted form: <Letter><digits>[.<bit>][[Z<index>]]. The numeric part
// need not be zero-padded on input; formatting always pads to 4 digits.
func Parse(s string) (Address, error) {
	if s == "" {
		return Address{}, moerror.New("empty address string").
			WithCode(moerror.CodeAddressFormat)
	}

	t, ok := ParseType(s[0])
	if !ok {
		return Address{}, moerror.Newf("unknown device letter %q", s[0]).
			WithCode(moerror.CodeAddressFormat).
			WithDetail("input", s)
	}

	pos := 1
	start := pos
	for pos < len(s) && isDigit(s[pos]) {
		pos++
	}
	if pos == start {
		return Address{}, moerror.Newf("missing numeric part in %q", s).
			WithCode(moerror.CodeAddressFormat)
	}
	num, err := strconv.Atoi(s[start:pos])
	if err != nil {
		return Address{}, moerror.Wrap(err, "invalid numeric part").
			WithCode(moerror.CodeAddressFormat).
			WithDetail("input", s)
	}

	addr := NewAddress(t, num)

	// Optional bit component
	if pos < len(s) && s[pos] == '.' {
		pos++
		start = pos
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
		if pos == start {
			return Address{}, moerror.Newf("missing bit index in %q", s).
				WithCode(moerror.CodeAddressFormat)
		}
		bit, err := strconv.Atoi(s[start:pos])
		if err != nil {
			return Address{}, moerror.Wrap(err, "invalid bit index").
				WithCode(moerror.CodeAddressFormat).
				WithDetail("input", s)
		}
		addr = addr.WithBit(bit)
	}

	// Optional index register component
	if pos < len(s) && s[pos] == '[' {
		pos++
		if pos >= len(s) || (s[pos] != 'Z' && s[pos] != 'z') {
			return Address{}, moerror.Newf("expected Z after '[' in %q", s).
				WithCode(moerror.CodeAddressFormat)
		}
		pos++
		start = pos
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
		if pos == start {
			return Address{}, moerror.Newf("missing index register number in %q", s).
				WithCode(moerror.CodeAddressFormat)
		}
		index, err := strconv.Atoi(s[start:pos])
		if err != nil {
			return Address{}, moerror.Wrap(err, "invalid index register").
				WithCode(moerror.CodeAddressFormat).
				WithDetail("input", s)
		}
		if pos >= len(s) || s[pos] != ']' {
			return Address{}, moerror.Newf("expected ']' in %q", s).
				WithCode(moerror.CodeAddressFormat)
		}
		pos++
		addr = addr.WithIndex(index)
	}

	if pos != len(s) {
		return Address{}, moerror.Newf("trailing characters in address %q", s).
			WithCode(moerror.CodeAddressFormat)
	}

	return addr, nil
}

// Looks reports whether a string has the shape of a device reference
// (leading letter followed by at least one digit). It performs no range or
// type checks; use Parse for full validation.
func Looks(s string) bool {
	if len(s) < 2 {
		return false
	}
	if _, ok := ParseType(s[0]); !ok {
		return false
	}
	return isDigit(s[1])
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
