// File: mapper.go
// Title: Address Mapper
// Description: Translates native device addresses into Modbus target
//              addresses and back. Index-registered addresses are
//              runtime-resolved and therefore unmappable; bit access on
//              word devices degrades into the coil window backing the
//              word storage. Reverse lookup returns every candidate whose
//              device window covers the target, leaving disambiguation
//              to the caller.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial mapper

package modbus

import (
	"sort"

	moerror "github.com/WKDev/ModOne-sub002/foundation/core/error"
	modevice "github.com/WKDev/ModOne-sub002/internal/ladder/device"
)

// Timer and counter current values live in fixed holding-register
// windows outside the generic rule table; the boolean contact state maps
// through the rules like any other address.
const (
	timerValueBase   = 20256
	counterValueBase = 20768
)

// Options configures a Mapper
type Options struct {
	// Rules is the mapping table; nil selects the defaults
	Rules Rules

	// Ranges bounds reverse lookups; nil selects the defaults
	Ranges modevice.Ranges
}

// Mapper performs native-to-Modbus address translation
type Mapper struct {
	rules  Rules
	ranges modevice.Ranges
}

// New creates a mapper
func New(opts Options) *Mapper {
	rules := opts.Rules
	if rules == nil {
		rules = DefaultRules()
	}
	ranges := opts.Ranges
	if ranges == nil {
		ranges = modevice.DefaultRanges()
	}
	return &Mapper{rules: rules, ranges: ranges}
}

// ToTarget maps a native address into the Modbus space. Index-registered
// addresses return an error: their effective address is only known at
// runtime.
func (m *Mapper) ToTarget(addr modevice.Address) (TargetAddress, error) {
	if addr.HasIndex() {
		return TargetAddress{}, moerror.Newf("address %s uses an index register", addr).
			WithCode(moerror.CodeMapUnresolved).
			WithDetail("address", addr.String())
	}

	rule, ok := m.rules[addr.Type]
	if !ok {
		return TargetAddress{}, moerror.Newf("no mapping rule for device type %s", addr.Type).
			WithCode(moerror.CodeMapNoRule).
			WithDetail("address", addr.String())
	}

	if addr.HasBit() && addr.Type.IsWord() {
		return TargetAddress{
			Memory: Coil,
			Num:    (rule.Offset+addr.Num)*16 + addr.Bit,
		}, nil
	}

	return TargetAddress{
		Memory: rule.Memory,
		Num:    rule.Offset + addr.Num,
	}, nil
}

// FromTarget returns every native address that the rule table maps onto
// the target. Device windows may overlap in the target space, so the
// result holds zero, one or many candidates, ordered by device type.
func (m *Mapper) FromTarget(target TargetAddress) []modevice.Address {
	var out []modevice.Address
	for _, rule := range m.rules {
		if rule.Memory != target.Memory {
			continue
		}
		num := target.Num - rule.Offset
		if num < 0 {
			continue
		}
		addr := modevice.NewAddress(rule.Device, num)
		if !m.ranges.Contains(addr) {
			continue
		}
		out = append(out, addr)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Type < out[j].Type
	})
	return out
}

// TimerValue maps a timer address to the holding register holding its
// current value
func (m *Mapper) TimerValue(addr modevice.Address) (TargetAddress, error) {
	if addr.Type != modevice.TypeT {
		return TargetAddress{}, moerror.Newf("%s is not a timer address", addr).
			WithCode(moerror.CodeMapNoRule).
			WithDetail("address", addr.String())
	}
	if addr.HasIndex() {
		return TargetAddress{}, moerror.Newf("address %s uses an index register", addr).
			WithCode(moerror.CodeMapUnresolved).
			WithDetail("address", addr.String())
	}
	return TargetAddress{Memory: HoldingRegister, Num: timerValueBase + addr.Num}, nil
}

// CounterValue maps a counter address to the holding register holding
// its current value
func (m *Mapper) CounterValue(addr modevice.Address) (TargetAddress, error) {
	if addr.Type != modevice.TypeC {
		return TargetAddress{}, moerror.Newf("%s is not a counter address", addr).
			WithCode(moerror.CodeMapNoRule).
			WithDetail("address", addr.String())
	}
	if addr.HasIndex() {
		return TargetAddress{}, moerror.Newf("address %s uses an index register", addr).
			WithCode(moerror.CodeMapUnresolved).
			WithDetail("address", addr.String())
	}
	return TargetAddress{Memory: HoldingRegister, Num: counterValueBase + addr.Num}, nil
}

// IsReadOnly reports whether the address belongs to a device class whose
// state is produced by hardware or logic rather than written externally
func (m *Mapper) IsReadOnly(addr modevice.Address) bool {
	return addr.Type.IsReadOnly()
}
