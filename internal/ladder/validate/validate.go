// File: validate.go
// Title: Program Validator
// Description: Static semantic analysis over a built ladder program.
//              Checks address ranges, bit and index register bounds,
//              read-only write violations, timer/counter device types,
//              structural block well-formedness, and output usage across
//              networks. Produces a report; never mutates the program.
// Author: WKDev
// Version: v0.1.1
// Created: 2026-08-16
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-16 v0.1.0: Initial checks
// - 2026-08-30 v0.1.1: Warn on bit components on bit devices

package validate

import (
	"sort"

	moerror "github.com/WKDev/ModOne-sub002/foundation/core/error"
	moast "github.com/WKDev/ModOne-sub002/internal/ladder/ast"
	modevice "github.com/WKDev/ModOne-sub002/internal/ladder/device"
	moprogram "github.com/WKDev/ModOne-sub002/internal/ladder/program"
)

// Options configures a Validator
type Options struct {
	// Ranges is the device range table; nil selects the defaults
	Ranges modevice.Ranges
}

// Validator checks built programs. It carries no per-run state, so one
// instance may validate any number of programs and repeated runs over
// the same program produce the same report.
type Validator struct {
	ranges modevice.Ranges
}

// New creates a validator
func New(opts Options) *Validator {
	ranges := opts.Ranges
	if ranges == nil {
		ranges = modevice.DefaultRanges()
	}
	return &Validator{ranges: ranges}
}

// Check validates a program with the default device ranges
func Check(prog *moprogram.Program) *Report {
	return New(Options{}).Check(prog)
}

// Check validates the program and returns the report. The program is
// valid when the report carries zero errors.
func (v *Validator) Check(prog *moprogram.Program) *Report {
	report := &Report{}

	if len(prog.Networks) == 0 {
		report.addWarning(moerror.CodeLadderEmpty, 0, 0, "program has no networks")
		return report
	}

	outputSteps := map[string][]int{}

	for _, net := range prog.Networks {
		nodes := net.Nodes()
		if len(nodes) == 0 {
			report.addWarning(moerror.CodeLadderEmpty, net.Step, 0, "network has no nodes")
			continue
		}

		hasOutput := false
		for _, node := range nodes {
			v.checkNode(report, net.Step, node)
			if moast.IsOutput(node) {
				hasOutput = true
				if addr, ok := moast.OutputAddress(node); ok {
					key := addr.String()
					steps := outputSteps[key]
					if len(steps) == 0 || steps[len(steps)-1] != net.Step {
						outputSteps[key] = append(steps, net.Step)
					}
				}
			}
		}

		if !hasOutput {
			report.addWarning(moerror.CodeLadderSemantic, net.Step, 0,
				"network drives no output")
		}
	}

	v.checkDuplicateOutputs(report, outputSteps)
	return report
}

// checkNode dispatches the per-node checks
func (v *Validator) checkNode(report *Report, step int, node moast.Node) {
	switch n := node.(type) {
	case *moast.Contact:
		v.checkAddress(report, step, n.ID(), n.Addr)
		if n.Addr.Type.IsWord() && !n.Addr.HasBit() {
			report.addWarning(moerror.CodeLadderSemantic, step, n.ID(),
				"contact on word device %s without bit index", n.Addr)
		}

	case *moast.Coil:
		v.checkAddress(report, step, n.ID(), n.Addr)
		v.checkWritable(report, step, n.ID(), n.Addr)

	case *moast.Timer:
		v.checkAddress(report, step, n.ID(), n.Addr)
		if n.Addr.Type != modevice.TypeT {
			report.addError(moerror.CodeLadderSemantic, step, n.ID(),
				"timer on non-timer device %s", n.Addr)
		}
		if n.Preset <= 0 {
			report.addWarning(moerror.CodeValueOutOfRange, step, n.ID(),
				"timer %s has non-positive preset %d", n.Addr, n.Preset)
		}

	case *moast.Counter:
		v.checkAddress(report, step, n.ID(), n.Addr)
		if n.Addr.Type != modevice.TypeC {
			report.addError(moerror.CodeLadderSemantic, step, n.ID(),
				"counter on non-counter device %s", n.Addr)
		}
		if n.Preset <= 0 {
			report.addWarning(moerror.CodeValueOutOfRange, step, n.ID(),
				"counter %s has non-positive preset %d", n.Addr, n.Preset)
		}

	case *moast.Compare:
		v.checkOperand(report, step, n.ID(), n.Left)
		v.checkOperand(report, step, n.ID(), n.Right)

	case *moast.Math:
		for _, src := range n.Sources {
			v.checkOperand(report, step, n.ID(), src)
		}
		v.checkAddress(report, step, n.ID(), n.Dest)
		v.checkWritable(report, step, n.ID(), n.Dest)

	case *moast.Block:
		if len(n.Children) < 2 {
			report.addError(moerror.CodeLadderSyntax, step, n.ID(),
				"%s block with %d children", n.Kind, len(n.Children))
		}
	}
}

// checkAddress verifies numeric range and the bit/index register bounds
func (v *Validator) checkAddress(report *Report, step, nodeID int, addr modevice.Address) {
	if !v.ranges.Contains(addr) {
		report.addError(moerror.CodeAddressRange, step, nodeID,
			"address %s outside range 0..%d", addr, v.ranges.Max(addr.Type))
	}
	if addr.HasBit() && (addr.Bit < 0 || addr.Bit > modevice.MaxBit) {
		report.addError(moerror.CodeBitRange, step, nodeID,
			"bit index %d outside 0..%d on %s", addr.Bit, modevice.MaxBit, addr)
	}
	if addr.HasBit() && addr.Type.IsBit() {
		report.addWarning(moerror.CodeLadderSemantic, step, nodeID,
			"bit component on bit device %s is ignored", addr)
	}
	if addr.HasIndex() && (addr.Index < 0 || addr.Index > modevice.MaxIndexRegister) {
		report.addError(moerror.CodeIndexRange, step, nodeID,
			"index register %d outside 0..%d on %s", addr.Index, modevice.MaxIndexRegister, addr)
	}
}

// checkOperand applies the address checks to address operands only
func (v *Validator) checkOperand(report *Report, step, nodeID int, op moast.Operand) {
	if op.IsAddress() {
		v.checkAddress(report, step, nodeID, op.Addr)
	}
}

// checkWritable reports writes to read-only device classes
func (v *Validator) checkWritable(report *Report, step, nodeID int, addr modevice.Address) {
	if addr.Type.IsReadOnly() {
		report.addError(moerror.CodeLadderSemantic, step, nodeID,
			"write to read-only device %s", addr)
	}
}

// checkDuplicateOutputs warns when the same output address is driven by
// more than one network
func (v *Validator) checkDuplicateOutputs(report *Report, outputSteps map[string][]int) {
	addrs := make([]string, 0, len(outputSteps))
	for addr, steps := range outputSteps {
		if len(steps) > 1 {
			addrs = append(addrs, addr)
		}
	}
	sort.Strings(addrs)

	for _, addr := range addrs {
		report.addWarning(moerror.CodeLadderSemantic, 0, 0,
			"output %s driven by %d networks", addr, len(outputSteps[addr]))
	}
}
