// File: parser.go
// Title: Instruction Stream Parser
// Description: Reconstructs ladder logic trees from flat mnemonic rows
//              using a stack machine. LOAD-family rows push new branches,
//              AND-family rows extend the stack top in series, OR-family
//              rows queue pending parallel branches, and ANDB/ORB combine
//              completed sub-blocks. Output-class rows (coils, timers,
//              counters, math) never touch the stack.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial stack machine

package parser

import (
	molog "github.com/WKDev/ModOne-sub002/foundation/core/log"
	moast "github.com/WKDev/ModOne-sub002/internal/ladder/ast"
	modevice "github.com/WKDev/ModOne-sub002/internal/ladder/device"
	moreader "github.com/WKDev/ModOne-sub002/internal/ladder/reader"
)

// Options configures a Parser
type Options struct {
	// Logger receives skipped-row diagnostics. When nil the package
	// default logger is used.
	Logger *molog.Logger
}

// Parser is the instruction stream stack machine. One Parser instance
// parses one rung at a time; Reset prepares it for the next rung while
// node identifiers keep increasing so every node in a program stays
// unique.
type Parser struct {
	stack   []moast.Node
	pending []moast.Node
	nextID  int
	logger  *molog.Logger
}

// New creates a parser with identifiers starting at 1
func New(opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = molog.GetDefault().WithName("parser")
	}
	return &Parser{
		nextID: 1,
		logger: logger,
	}
}

// Reset clears the stack and pending branches for the next rung. The
// identifier counter is not reset.
func (p *Parser) Reset() {
	p.stack = nil
	p.pending = nil
}

// allocID hands out the next node identifier
func (p *Parser) allocID() int {
	id := p.nextID
	p.nextID++
	return id
}

// Feed applies one instruction row and returns the node it constructed,
// or nil when the row is skipped or performs a pure stack operation with
// nothing to combine. Output-class nodes (coils, timers, counters, math)
// are returned to the caller for attachment to the rung; they are never
// placed on the stack.
func (p *Parser) Feed(row moreader.Row) moast.Node {
	m, ok := Lookup(row.Instr)
	if !ok {
		p.logger.Debug("skipping unrecognized mnemonic", molog.Fields{
			"seq":   row.Seq,
			"instr": row.Instr,
		})
		return nil
	}

	switch m.Family {
	case FamilyLoad, FamilyAnd, FamilyOr:
		return p.feedInput(m, row)
	case FamilyAndBlock:
		return p.combineBlocks(moast.BlockSeries, row)
	case FamilyOrBlock:
		return p.combineBlocks(moast.BlockParallel, row)
	case FamilyOut:
		return p.buildCoil(m, row)
	case FamilyTimer:
		return p.buildTimer(m, row)
	case FamilyCounter:
		return p.buildCounter(m, row)
	case FamilyMath:
		return p.buildMath(m, row)
	default:
		return nil
	}
}

// feedInput handles the LOAD, AND and OR families, for both contact and
// comparison forms. An AND with an empty stack degrades to a LOAD.
func (p *Parser) feedInput(m Mnemonic, row moreader.Row) moast.Node {
	leaf := p.buildInputLeaf(m, row)
	if leaf == nil {
		return nil
	}

	switch m.Family {
	case FamilyOr:
		p.pending = append(p.pending, leaf)
	case FamilyAnd:
		if len(p.stack) == 0 {
			p.stack = append(p.stack, leaf)
			break
		}
		top := p.pop()
		p.push(p.extendSeries(top, leaf, row.Comment))
	default: // FamilyLoad
		p.stack = append(p.stack, leaf)
	}
	return leaf
}

// buildInputLeaf constructs the contact or comparison node for an input
// row. Rows with unusable operands are skipped.
func (p *Parser) buildInputLeaf(m Mnemonic, row moreader.Row) moast.Node {
	if m.IsCompare {
		left, okL := ParseOperand(row.Operands[0])
		right, okR := ParseOperand(row.Operands[1])
		if !okL || !okR {
			p.logger.Debug("skipping comparison with unusable operands", molog.Fields{
				"seq":   row.Seq,
				"instr": row.Instr,
			})
			return nil
		}
		return &moast.Compare{
			Meta:  moast.Meta{NodeID: p.allocID(), Note: row.Comment},
			Op:    m.Compare,
			Left:  left,
			Right: right,
		}
	}

	addr, err := modevice.Parse(row.Operands[0])
	if err != nil {
		p.logger.Debug("skipping contact with unusable address", molog.Fields{
			"seq":     row.Seq,
			"instr":   row.Instr,
			"operand": row.Operands[0],
		})
		return nil
	}
	return &moast.Contact{
		Meta: moast.Meta{NodeID: p.allocID(), Note: row.Comment},
		Kind: m.Contact,
		Addr: addr,
	}
}

// extendSeries joins a new element onto a branch in series. An existing
// series block grows in place so a chain of ANDs stays one flat block.
func (p *Parser) extendSeries(branch, next moast.Node, note string) moast.Node {
	if b, ok := branch.(*moast.Block); ok && b.Kind == moast.BlockSeries {
		b.Children = append(b.Children, next)
		return b
	}
	return &moast.Block{
		Meta:     moast.Meta{NodeID: p.allocID(), Note: note},
		Kind:     moast.BlockSeries,
		Children: []moast.Node{branch, next},
	}
}

// combineBlocks implements ANDB and ORB. The two topmost stack items
// combine with the older item first; with fewer than two items the row is
// a no-op.
func (p *Parser) combineBlocks(kind moast.BlockKind, row moreader.Row) moast.Node {
	if len(p.stack) < 2 {
		p.logger.Warn("block combine with insufficient stack", molog.Fields{
			"seq":   row.Seq,
			"instr": row.Instr,
			"depth": len(p.stack),
		})
		return nil
	}

	newer := p.pop()
	older := p.pop()
	block := &moast.Block{
		Meta:     moast.Meta{NodeID: p.allocID(), Note: row.Comment},
		Kind:     kind,
		Children: []moast.Node{older, newer},
	}
	p.push(block)
	return block
}

func (p *Parser) buildCoil(m Mnemonic, row moreader.Row) moast.Node {
	addr, err := modevice.Parse(row.Operands[0])
	if err != nil {
		p.logger.Debug("skipping coil with unusable address", molog.Fields{
			"seq":     row.Seq,
			"instr":   row.Instr,
			"operand": row.Operands[0],
		})
		return nil
	}
	return &moast.Coil{
		Meta: moast.Meta{NodeID: p.allocID(), Note: row.Comment},
		Kind: m.Coil,
		Addr: addr,
	}
}

// defaultTimeBaseMS is the tick length used when a timer row carries no
// third operand
const defaultTimeBaseMS = 100

func (p *Parser) buildTimer(m Mnemonic, row moreader.Row) moast.Node {
	addr, err := modevice.Parse(row.Operands[0])
	if err != nil {
		p.logger.Debug("skipping timer with unusable address", molog.Fields{
			"seq":     row.Seq,
			"instr":   row.Instr,
			"operand": row.Operands[0],
		})
		return nil
	}

	preset, _ := ParseImmediate(row.Operands[1])
	base := defaultTimeBaseMS
	if v, ok := ParseImmediate(row.Operands[2]); ok && v > 0 {
		base = int(v)
	}

	return &moast.Timer{
		Meta:       moast.Meta{NodeID: p.allocID(), Note: row.Comment},
		Kind:       m.Timer,
		Addr:       addr,
		Preset:     preset,
		TimeBaseMS: base,
	}
}

func (p *Parser) buildCounter(m Mnemonic, row moreader.Row) moast.Node {
	addr, err := modevice.Parse(row.Operands[0])
	if err != nil {
		p.logger.Debug("skipping counter with unusable address", molog.Fields{
			"seq":     row.Seq,
			"instr":   row.Instr,
			"operand": row.Operands[0],
		})
		return nil
	}

	preset, _ := ParseImmediate(row.Operands[1])
	return &moast.Counter{
		Meta:   moast.Meta{NodeID: p.allocID(), Note: row.Comment},
		Kind:   m.Counter,
		Addr:   addr,
		Preset: preset,
	}
}

// buildMath constructs a MOV (one source) or arithmetic (two source)
// node. The last operand is the destination and must be a writable-style
// device address; the validator checks writability later.
func (p *Parser) buildMath(m Mnemonic, row moreader.Row) moast.Node {
	sourceCount := 2
	if m.Math == moast.MathMove {
		sourceCount = 1
	}

	sources := make([]moast.Operand, 0, sourceCount)
	for i := 0; i < sourceCount; i++ {
		op, ok := ParseOperand(row.Operands[i])
		if !ok {
			p.logger.Debug("skipping math with unusable source", molog.Fields{
				"seq":     row.Seq,
				"instr":   row.Instr,
				"operand": row.Operands[i],
			})
			return nil
		}
		sources = append(sources, op)
	}

	dest, err := modevice.Parse(row.Operands[sourceCount])
	if err != nil {
		p.logger.Debug("skipping math with unusable destination", molog.Fields{
			"seq":     row.Seq,
			"instr":   row.Instr,
			"operand": row.Operands[sourceCount],
		})
		return nil
	}

	return &moast.Math{
		Meta:    moast.Meta{NodeID: p.allocID(), Note: row.Comment},
		Op:      m.Math,
		Sources: sources,
		Dest:    dest,
	}
}

// Result finalizes the current rung and returns its logic root, or nil
// when the rung carried no input logic. Pending parallel branches resolve
// last-registered-first against the stack top; in the resulting block the
// original branch comes first and OR branches follow in source order.
func (p *Parser) Result() moast.Node {
	merged := false
	for len(p.pending) > 0 {
		or := p.pending[len(p.pending)-1]
		p.pending = p.pending[:len(p.pending)-1]

		if len(p.stack) == 0 {
			p.push(or)
			merged = false
			continue
		}

		top := p.pop()
		if b, ok := top.(*moast.Block); ok && merged && b.Kind == moast.BlockParallel {
			// Grow the block built by earlier iterations: the main
			// branch stays first, this earlier-registered OR branch
			// slots in ahead of the later ones.
			b.Children = append(b.Children, nil)
			copy(b.Children[2:], b.Children[1:])
			b.Children[1] = or
			p.push(b)
			continue
		}

		p.push(&moast.Block{
			Meta:     moast.Meta{NodeID: p.allocID()},
			Kind:     moast.BlockParallel,
			Children: []moast.Node{top, or},
		})
		merged = true
	}

	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

// Depth reports the current stack depth
func (p *Parser) Depth() int { return len(p.stack) }

func (p *Parser) push(n moast.Node) { p.stack = append(p.stack, n) }

func (p *Parser) pop() moast.Node {
	n := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return n
}
