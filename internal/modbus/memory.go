// File: memory.go
// Title: Modbus Memory Model
// Description: The four flat Modbus address spaces and the textual
//              target address form `<CO|DI|HR|IR>:<decimal>`. Parsing is
//              case-insensitive; formatting is canonical upper-case.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial memory model

package modbus

import (
	"fmt"
	"strconv"
	"strings"

	moerror "github.com/WKDev/ModOne-sub002/foundation/core/error"
)

// MemoryType identifies one of the four Modbus address spaces
type MemoryType int

const (
	// Coil is read-write single-bit space
	Coil MemoryType = iota

	// DiscreteInput is read-only single-bit space
	DiscreteInput

	// HoldingRegister is read-write 16-bit space
	HoldingRegister

	// InputRegister is read-only 16-bit space
	InputRegister
)

// String returns the canonical short code for the memory type
func (m MemoryType) String() string {
	switch m {
	case Coil:
		return "CO"
	case DiscreteInput:
		return "DI"
	case HoldingRegister:
		return "HR"
	case InputRegister:
		return "IR"
	default:
		return "??"
	}
}

// IsBit reports whether the space holds single bits
func (m MemoryType) IsBit() bool {
	return m == Coil || m == DiscreteInput
}

// ParseMemoryType parses a short code, case-insensitively
func ParseMemoryType(s string) (MemoryType, error) {
	switch strings.ToUpper(s) {
	case "CO":
		return Coil, nil
	case "DI":
		return DiscreteInput, nil
	case "HR":
		return HoldingRegister, nil
	case "IR":
		return InputRegister, nil
	default:
		return Coil, moerror.Newf("unknown memory type %q", s).
			WithCode(moerror.CodeTargetFormat)
	}
}

// TargetAddress is one address in a Modbus memory space
type TargetAddress struct {
	Memory MemoryType
	Num    int
}

// String formats the target address in its canonical form, e.g. CO:8192
func (t TargetAddress) String() string {
	return fmt.Sprintf("%s:%d", t.Memory, t.Num)
}

// ParseTarget parses a target address string. The memory code is matched
// case-insensitively; the numeric part is non-negative decimal.
func ParseTarget(s string) (TargetAddress, error) {
	code, num, found := strings.Cut(s, ":")
	if !found {
		return TargetAddress{}, moerror.Newf("malformed target address %q", s).
			WithCode(moerror.CodeTargetFormat)
	}

	memory, err := ParseMemoryType(code)
	if err != nil {
		return TargetAddress{}, err
	}

	n, convErr := strconv.Atoi(num)
	if convErr != nil || n < 0 {
		return TargetAddress{}, moerror.Newf("malformed target number %q", num).
			WithCode(moerror.CodeTargetFormat).
			WithDetail("input", s)
	}

	return TargetAddress{Memory: memory, Num: n}, nil
}
