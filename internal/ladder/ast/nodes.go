// File: nodes.go
// Title: Ladder AST Node Definitions
// Description: Defines the logic node types of a parsed ladder program:
//              contacts, coils, timers, counters, comparisons, arithmetic
//              and move operations, and series/parallel blocks. Every node
//              carries a unique id, an optional comment, and a grid cell
//              assigned during layout.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strconv"
	"strings"

	modevice "github.com/WKDev/ModOne-sub002/internal/ladder/device"
)

// Cell is a position on the ladder grid (both 0-based)
type Cell struct {
	Row int
	Col int
}

// Node represents the base interface for all ladder logic nodes
type Node interface {
	// ID returns the node's unique identifier
	ID() int

	// Comment returns the operator comment attached to the node, if any
	Comment() string

	// Cell returns the node's grid position assigned during layout
	Cell() Cell

	// String returns a compact textual representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}
}

// Meta carries the fields common to every node. Concrete node types embed
// it; the builder fills Pos during layout, before the program is published.
type Meta struct {
	NodeID int
	Note   string
	Pos    Cell
}

// ID returns the node's unique identifier
func (m *Meta) ID() int { return m.NodeID }

// Comment returns the operator comment attached to the node
func (m *Meta) Comment() string { return m.Note }

// Cell returns the node's grid position
func (m *Meta) Cell() Cell { return m.Pos }

// SetCell assigns the node's grid position during layout
func (m *Meta) SetCell(c Cell) { m.Pos = c }

// ContactKind distinguishes the contact variants
type ContactKind int

const (
	// ContactNO is a normally-open contact
	ContactNO ContactKind = iota

	// ContactNC is a normally-closed contact
	ContactNC

	// ContactRising triggers on a rising edge
	ContactRising

	// ContactFalling triggers on a falling edge
	ContactFalling
)

// String returns the ladder symbol for the contact kind
func (k ContactKind) String() string {
	switch k {
	case ContactNO:
		return "| |"
	case ContactNC:
		return "|/|"
	case ContactRising:
		return "|P|"
	case ContactFalling:
		return "|F|"
	default:
		return "|?|"
	}
}

// Contact is a boolean input element reading one device address
type Contact struct {
	Meta
	Kind ContactKind
	Addr modevice.Address
}

// CoilKind distinguishes the output variants
type CoilKind int

const (
	// CoilOut drives the address for the duration of rung truth
	CoilOut CoilKind = iota

	// CoilSet latches the address on
	CoilSet

	// CoilReset latches the address off
	CoilReset
)

// String returns the ladder symbol for the coil kind
func (k CoilKind) String() string {
	switch k {
	case CoilOut:
		return "( )"
	case CoilSet:
		return "(S)"
	case CoilReset:
		return "(R)"
	default:
		return "(?)"
	}
}

// Coil is an output element writing one device address
type Coil struct {
	Meta
	Kind CoilKind
	Addr modevice.Address
}

// TimerKind distinguishes the timer variants
type TimerKind int

const (
	// TimerOnDelay delays activation (TON)
	TimerOnDelay TimerKind = iota

	// TimerOffDelay delays deactivation (TOF)
	TimerOffDelay

	// TimerAccumulating retains elapsed time across deactivation (TMR)
	TimerAccumulating
)

// String returns the mnemonic for the timer kind
func (k TimerKind) String() string {
	switch k {
	case TimerOnDelay:
		return "TON"
	case TimerOffDelay:
		return "TOF"
	case TimerAccumulating:
		return "TMR"
	default:
		return "T??"
	}
}

// Timer is a timing output element. TimeBaseMS is the tick length in
// milliseconds; Preset counts ticks.
type Timer struct {
	Meta
	Kind       TimerKind
	Addr       modevice.Address
	Preset     int64
	TimeBaseMS int
}

// CounterKind distinguishes the counter variants
type CounterKind int

const (
	// CounterUp counts rising edges upward (CTU)
	CounterUp CounterKind = iota

	// CounterDown counts downward from the preset (CTD)
	CounterDown

	// CounterUpDown counts both directions (CTUD)
	CounterUpDown
)

// String returns the mnemonic for the counter kind
func (k CounterKind) String() string {
	switch k {
	case CounterUp:
		return "CTU"
	case CounterDown:
		return "CTD"
	case CounterUpDown:
		return "CTUD"
	default:
		return "C??"
	}
}

// Counter is a counting output element
type Counter struct {
	Meta
	Kind   CounterKind
	Addr   modevice.Address
	Preset int64
}

// CompareOp is a comparison operator
type CompareOp int

const (
	CompareEQ CompareOp = iota // =
	CompareGT                  // >
	CompareLT                  // <
	CompareGE                  // >=
	CompareLE                  // <=
	CompareNE                  // <>
)

// String returns the operator's source form
func (op CompareOp) String() string {
	switch op {
	case CompareEQ:
		return "="
	case CompareGT:
		return ">"
	case CompareLT:
		return "<"
	case CompareGE:
		return ">="
	case CompareLE:
		return "<="
	case CompareNE:
		return "<>"
	default:
		return "?"
	}
}

// OperandKind distinguishes the two operand variants
type OperandKind int

const (
	// OperandAddress references a device location
	OperandAddress OperandKind = iota

	// OperandImmediate is a literal numeric value
	OperandImmediate
)

// Operand is either a device address or an immediate value. The two-variant
// shape is deliberate: comparison and arithmetic operands must never be a
// loosely typed union.
type Operand struct {
	Kind  OperandKind
	Addr  modevice.Address
	Value int64
}

// AddressOperand creates an address-variant operand
func AddressOperand(addr modevice.Address) Operand {
	return Operand{Kind: OperandAddress, Addr: addr}
}

// ImmediateOperand creates an immediate-variant operand
func ImmediateOperand(value int64) Operand {
	return Operand{Kind: OperandImmediate, Value: value}
}

// IsAddress returns true for the address variant
func (o Operand) IsAddress() bool {
	return o.Kind == OperandAddress
}

// String returns the operand's source form
func (o Operand) String() string {
	if o.IsAddress() {
		return o.Addr.String()
	}
	return strconv.FormatInt(o.Value, 10)
}

// Compare is a comparison element contributing to rung logic like a contact
type Compare struct {
	Meta
	Op    CompareOp
	Left  Operand
	Right Operand
}

// MathOp is an arithmetic or move operator
type MathOp int

const (
	MathMove MathOp = iota // MOV
	MathAdd                // ADD
	MathSub                // SUB
	MathMul                // MUL
	MathDiv                // DIV
)

// String returns the mnemonic for the operator
func (op MathOp) String() string {
	switch op {
	case MathMove:
		return "MOV"
	case MathAdd:
		return "ADD"
	case MathSub:
		return "SUB"
	case MathMul:
		return "MUL"
	case MathDiv:
		return "DIV"
	default:
		return "???"
	}
}

// Math is an arithmetic or move element: one source for MOV, two for the
// others, and a destination address.
type Math struct {
	Meta
	Op      MathOp
	Sources []Operand
	Dest    modevice.Address
}

// BlockKind distinguishes logic combination blocks
type BlockKind int

const (
	// BlockSeries is an AND combination, laid out left-to-right
	BlockSeries BlockKind = iota

	// BlockParallel is an OR combination, laid out top-to-bottom
	BlockParallel
)

// String returns a name for the block kind
func (k BlockKind) String() string {
	switch k {
	case BlockSeries:
		return "series"
	case BlockParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// Block combines two or more child nodes in series or parallel
type Block struct {
	Meta
	Kind     BlockKind
	Children []Node
}

// Node interface implementations

func (c *Contact) String() string {
	return fmt.Sprintf("%s%s", c.Kind, c.Addr)
}

func (c *Contact) Accept(visitor Visitor) interface{} {
	return visitor.VisitContact(c)
}

func (c *Coil) String() string {
	return fmt.Sprintf("%s%s", c.Kind, c.Addr)
}

func (c *Coil) Accept(visitor Visitor) interface{} {
	return visitor.VisitCoil(c)
}

func (t *Timer) String() string {
	return fmt.Sprintf("%s %s %d x %dms", t.Kind, t.Addr, t.Preset, t.TimeBaseMS)
}

func (t *Timer) Accept(visitor Visitor) interface{} {
	return visitor.VisitTimer(t)
}

func (c *Counter) String() string {
	return fmt.Sprintf("%s %s %d", c.Kind, c.Addr, c.Preset)
}

func (c *Counter) Accept(visitor Visitor) interface{} {
	return visitor.VisitCounter(c)
}

func (c *Compare) String() string {
	return fmt.Sprintf("[%s %s %s]", c.Left, c.Op, c.Right)
}

func (c *Compare) Accept(visitor Visitor) interface{} {
	return visitor.VisitCompare(c)
}

func (m *Math) String() string {
	var srcs []string
	for _, s := range m.Sources {
		srcs = append(srcs, s.String())
	}
	return fmt.Sprintf("[%s %s -> %s]", m.Op, strings.Join(srcs, " "), m.Dest)
}

func (m *Math) Accept(visitor Visitor) interface{} {
	return visitor.VisitMath(m)
}

func (b *Block) String() string {
	sep := " AND "
	if b.Kind == BlockParallel {
		sep = " OR "
	}
	var parts []string
	for _, child := range b.Children {
		parts = append(parts, child.String())
	}
	return "(" + strings.Join(parts, sep) + ")"
}

func (b *Block) Accept(visitor Visitor) interface{} {
	return visitor.VisitBlock(b)
}

// IsOutput reports whether a node is an output-class element
// (coil, timer, or counter)
func IsOutput(n Node) bool {
	switch n.(type) {
	case *Coil, *Timer, *Counter:
		return true
	default:
		return false
	}
}

// OutputAddress returns the written device address of an output-class node
func OutputAddress(n Node) (modevice.Address, bool) {
	switch node := n.(type) {
	case *Coil:
		return node.Addr, true
	case *Timer:
		return node.Addr, true
	case *Counter:
		return node.Addr, true
	default:
		return modevice.Address{}, false
	}
}

// Flatten returns the pre-order traversal of the tree rooted at n,
// containers included, so consumers can recover structure from the
// flattened list.
func Flatten(n Node) []Node {
	if n == nil {
		return nil
	}

	nodes := []Node{n}
	if block, ok := n.(*Block); ok {
		for _, child := range block.Children {
			nodes = append(nodes, Flatten(child)...)
		}
	}
	return nodes
}
