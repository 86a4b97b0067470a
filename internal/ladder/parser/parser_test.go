// File: parser_test.go
// Title: Instruction Stream Parser Tests
// Description: Tests for the stack machine rung reconstruction, mnemonic
//              classification and operand interpretation.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial tests

package parser

import (
	"testing"

	moast "github.com/WKDev/ModOne-sub002/internal/ladder/ast"
	modevice "github.com/WKDev/ModOne-sub002/internal/ladder/device"
	moreader "github.com/WKDev/ModOne-sub002/internal/ladder/reader"
)

// row builds an instruction row for feeding the parser directly
func row(instr string, operands ...string) moreader.Row {
	r := moreader.Row{Instr: instr}
	for i, op := range operands {
		if i >= len(r.Operands) {
			break
		}
		r.Operands[i] = op
	}
	return r
}

// feed runs a sequence of rows through a fresh parser and returns the
// rung root
func feed(t *testing.T, rows ...moreader.Row) moast.Node {
	t.Helper()
	p := New(Options{})
	for _, r := range rows {
		p.Feed(r)
	}
	return p.Result()
}

func TestParserSeries(t *testing.T) {
	root := feed(t,
		row("LOAD", "P0000"),
		row("AND", "P0001"),
		row("AND", "P0002"),
	)

	block, ok := root.(*moast.Block)
	if !ok {
		t.Fatalf("expected block root, got %T", root)
	}
	if block.Kind != moast.BlockSeries {
		t.Errorf("expected series block, got %v", block.Kind)
	}
	if len(block.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(block.Children))
	}

	for i, want := range []string{"P0000", "P0001", "P0002"} {
		contact, ok := block.Children[i].(*moast.Contact)
		if !ok {
			t.Fatalf("child %d: expected contact, got %T", i, block.Children[i])
		}
		if got := contact.Addr.String(); got != want {
			t.Errorf("child %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestParserParallel(t *testing.T) {
	root := feed(t,
		row("LOAD", "M0000"),
		row("OR", "M0001"),
		row("OR", "M0002"),
	)

	block, ok := root.(*moast.Block)
	if !ok {
		t.Fatalf("expected block root, got %T", root)
	}
	if block.Kind != moast.BlockParallel {
		t.Errorf("expected parallel block, got %v", block.Kind)
	}
	if len(block.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(block.Children))
	}

	// Main branch first, OR branches in source order below it
	for i, want := range []string{"M0000", "M0001", "M0002"} {
		contact, ok := block.Children[i].(*moast.Contact)
		if !ok {
			t.Fatalf("child %d: expected contact, got %T", i, block.Children[i])
		}
		if got := contact.Addr.String(); got != want {
			t.Errorf("child %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestParserNestedBlocks(t *testing.T) {
	root := feed(t,
		row("LOAD", "P0000"),
		row("AND", "P0001"),
		row("LOAD", "P0002"),
		row("AND", "P0003"),
		row("ORB"),
	)

	block, ok := root.(*moast.Block)
	if !ok {
		t.Fatalf("expected block root, got %T", root)
	}
	if block.Kind != moast.BlockParallel {
		t.Errorf("expected parallel block, got %v", block.Kind)
	}
	if len(block.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(block.Children))
	}

	for i, child := range block.Children {
		series, ok := child.(*moast.Block)
		if !ok {
			t.Fatalf("child %d: expected block, got %T", i, child)
		}
		if series.Kind != moast.BlockSeries {
			t.Errorf("child %d: expected series block, got %v", i, series.Kind)
		}
		if len(series.Children) != 2 {
			t.Errorf("child %d: expected 2 leaves, got %d", i, len(series.Children))
		}
	}
}

func TestParserSeriesOfBlocks(t *testing.T) {
	root := feed(t,
		row("LOAD", "P0000"),
		row("OR", "P0001"),
		row("LOAD", "P0002"),
		row("OR", "P0003"),
		row("ORB"),
	)

	// Both OR rows are still pending when ORB runs with only two plain
	// branches stacked, so the ORB combines P0000 and P0002 and the
	// pending branches resolve against that block afterwards.
	block, ok := root.(*moast.Block)
	if !ok {
		t.Fatalf("expected block root, got %T", root)
	}
	if block.Kind != moast.BlockParallel {
		t.Errorf("expected parallel root, got %v", block.Kind)
	}
}

func TestParserOrBranchWrapsSeriesBlock(t *testing.T) {
	// An OR branch resolving against a series block wraps it in a new
	// parallel block; branches never splice into an existing series.
	root := feed(t,
		row("LOAD", "P0000"),
		row("LOAD", "P0001"),
		row("ANDB"),
		row("OR", "P0002"),
	)

	block, ok := root.(*moast.Block)
	if !ok {
		t.Fatalf("expected block root, got %T", root)
	}
	if block.Kind != moast.BlockParallel {
		t.Errorf("expected parallel root, got %v", block.Kind)
	}
	if len(block.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(block.Children))
	}

	series, ok := block.Children[0].(*moast.Block)
	if !ok || series.Kind != moast.BlockSeries {
		t.Fatalf("expected series first child, got %T", block.Children[0])
	}
	if len(series.Children) != 2 {
		t.Errorf("expected series untouched with 2 leaves, got %d", len(series.Children))
	}
	if contact, ok := block.Children[1].(*moast.Contact); !ok || contact.Addr.String() != "P0002" {
		t.Errorf("expected P0002 branch second, got %v", block.Children[1])
	}
}

func TestParserAndOnEmptyStack(t *testing.T) {
	// A leading AND degrades to a LOAD instead of failing
	root := feed(t,
		row("AND", "P0000"),
		row("AND", "P0001"),
	)

	block, ok := root.(*moast.Block)
	if !ok {
		t.Fatalf("expected block root, got %T", root)
	}
	if block.Kind != moast.BlockSeries || len(block.Children) != 2 {
		t.Errorf("expected 2-element series, got %v with %d children",
			block.Kind, len(block.Children))
	}
}

func TestParserBlockCombineUnderflow(t *testing.T) {
	p := New(Options{})
	p.Feed(row("LOAD", "P0000"))

	if node := p.Feed(row("ANDB")); node != nil {
		t.Errorf("expected no node from underflowing ANDB, got %v", node)
	}
	if p.Depth() != 1 {
		t.Errorf("expected stack untouched at depth 1, got %d", p.Depth())
	}

	root := p.Result()
	contact, ok := root.(*moast.Contact)
	if !ok {
		t.Fatalf("expected surviving contact root, got %T", root)
	}
	if contact.Addr.String() != "P0000" {
		t.Errorf("expected P0000, got %s", contact.Addr)
	}
}

func TestParserContactKinds(t *testing.T) {
	tests := []struct {
		name  string
		instr string
		kind  moast.ContactKind
	}{
		{"normally open", "LOAD", moast.ContactNO},
		{"normally closed", "LOADN", moast.ContactNC},
		{"rising edge", "LOADP", moast.ContactRising},
		{"falling edge", "LOADF", moast.ContactFalling},
		{"short alias", "LD", moast.ContactNO},
		{"short alias closed", "LDN", moast.ContactNC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := feed(t, row(tt.instr, "M0010"))
			contact, ok := root.(*moast.Contact)
			if !ok {
				t.Fatalf("expected contact root, got %T", root)
			}
			if contact.Kind != tt.kind {
				t.Errorf("expected kind %v, got %v", tt.kind, contact.Kind)
			}
		})
	}
}

func TestParserComparisons(t *testing.T) {
	tests := []struct {
		name  string
		instr string
		op    moast.CompareOp
	}{
		{"load equal", "LD=", moast.CompareEQ},
		{"load greater-equal", "LD>=", moast.CompareGE},
		{"load less-equal", "LOAD<=", moast.CompareLE},
		{"load not-equal", "LD<>", moast.CompareNE},
		{"load greater", "LOAD>", moast.CompareGT},
		{"load less", "LD<", moast.CompareLT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := feed(t, row(tt.instr, "D0001", "10"))
			cmp, ok := root.(*moast.Compare)
			if !ok {
				t.Fatalf("expected compare root, got %T", root)
			}
			if cmp.Op != tt.op {
				t.Errorf("expected op %v, got %v", tt.op, cmp.Op)
			}
			if !cmp.Left.IsAddress() {
				t.Error("expected address left operand")
			}
			if cmp.Right.IsAddress() || cmp.Right.Value != 10 {
				t.Errorf("expected immediate 10 right operand, got %v", cmp.Right)
			}
		})
	}
}

func TestParserComparisonCombines(t *testing.T) {
	root := feed(t,
		row("LOAD", "P0000"),
		row("AND>=", "D0001", "100"),
	)

	block, ok := root.(*moast.Block)
	if !ok {
		t.Fatalf("expected block root, got %T", root)
	}
	if block.Kind != moast.BlockSeries || len(block.Children) != 2 {
		t.Fatalf("expected 2-element series, got %v with %d children",
			block.Kind, len(block.Children))
	}
	if _, ok := block.Children[1].(*moast.Compare); !ok {
		t.Errorf("expected compare second element, got %T", block.Children[1])
	}
}

func TestParserOutputsBypassStack(t *testing.T) {
	p := New(Options{})
	p.Feed(row("LOAD", "P0000"))

	coil := p.Feed(row("OUT", "M0000"))
	if _, ok := coil.(*moast.Coil); !ok {
		t.Fatalf("expected coil node, got %T", coil)
	}
	if p.Depth() != 1 {
		t.Errorf("expected coil to leave stack at depth 1, got %d", p.Depth())
	}

	root := p.Result()
	if _, ok := root.(*moast.Contact); !ok {
		t.Errorf("expected contact root unaffected by coil, got %T", root)
	}
}

func TestParserCoilKinds(t *testing.T) {
	tests := []struct {
		name  string
		instr string
		kind  moast.CoilKind
	}{
		{"out", "OUT", moast.CoilOut},
		{"set", "SET", moast.CoilSet},
		{"reset", "RST", moast.CoilReset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(Options{})
			node := p.Feed(row(tt.instr, "M0100"))
			coil, ok := node.(*moast.Coil)
			if !ok {
				t.Fatalf("expected coil, got %T", node)
			}
			if coil.Kind != tt.kind {
				t.Errorf("expected kind %v, got %v", tt.kind, coil.Kind)
			}
		})
	}
}

func TestParserTimer(t *testing.T) {
	tests := []struct {
		name       string
		operands   []string
		wantPreset int64
		wantBase   int
	}{
		{"explicit base", []string{"T0001", "50", "10"}, 50, 10},
		{"default base", []string{"T0001", "50"}, 50, 100},
		{"hex preset", []string{"T0002", "H20"}, 32, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(Options{})
			node := p.Feed(row("TON", tt.operands...))
			timer, ok := node.(*moast.Timer)
			if !ok {
				t.Fatalf("expected timer, got %T", node)
			}
			if timer.Kind != moast.TimerOnDelay {
				t.Errorf("expected on-delay timer, got %v", timer.Kind)
			}
			if timer.Preset != tt.wantPreset {
				t.Errorf("expected preset %d, got %d", tt.wantPreset, timer.Preset)
			}
			if timer.TimeBaseMS != tt.wantBase {
				t.Errorf("expected time base %d, got %d", tt.wantBase, timer.TimeBaseMS)
			}
		})
	}
}

func TestParserCounter(t *testing.T) {
	p := New(Options{})
	node := p.Feed(row("CTU", "C0003", "25"))
	counter, ok := node.(*moast.Counter)
	if !ok {
		t.Fatalf("expected counter, got %T", node)
	}
	if counter.Kind != moast.CounterUp {
		t.Errorf("expected up counter, got %v", counter.Kind)
	}
	if counter.Addr.String() != "C0003" {
		t.Errorf("expected C0003, got %s", counter.Addr)
	}
	if counter.Preset != 25 {
		t.Errorf("expected preset 25, got %d", counter.Preset)
	}
}

func TestParserMath(t *testing.T) {
	tests := []struct {
		name        string
		instr       string
		operands    []string
		wantOp      moast.MathOp
		wantSources int
		wantDest    string
	}{
		{"move", "MOV", []string{"100", "D0000"}, moast.MathMove, 1, "D0000"},
		{"add", "ADD", []string{"D0001", "D0002", "D0003"}, moast.MathAdd, 2, "D0003"},
		{"subtract immediate", "SUB", []string{"D0001", "5", "D0002"}, moast.MathSub, 2, "D0002"},
		{"multiply", "MUL", []string{"D0001", "2", "D0002"}, moast.MathMul, 2, "D0002"},
		{"divide", "DIV", []string{"D0001", "H10", "D0002"}, moast.MathDiv, 2, "D0002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(Options{})
			node := p.Feed(row(tt.instr, tt.operands...))
			math, ok := node.(*moast.Math)
			if !ok {
				t.Fatalf("expected math node, got %T", node)
			}
			if math.Op != tt.wantOp {
				t.Errorf("expected op %v, got %v", tt.wantOp, math.Op)
			}
			if len(math.Sources) != tt.wantSources {
				t.Errorf("expected %d sources, got %d", tt.wantSources, len(math.Sources))
			}
			if math.Dest.String() != tt.wantDest {
				t.Errorf("expected dest %s, got %s", tt.wantDest, math.Dest)
			}
		})
	}
}

func TestParserSkipsUnusableRows(t *testing.T) {
	tests := []struct {
		name string
		row  moreader.Row
	}{
		{"unknown mnemonic", row("NOP")},
		{"contact without address", row("LOAD", "notanaddress")},
		{"comparison missing operand", row("LD=", "D0001")},
		{"math missing destination", row("ADD", "D0001", "D0002")},
		{"math immediate destination", row("MOV", "100", "200")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(Options{})
			if node := p.Feed(tt.row); node != nil {
				t.Errorf("expected row to be skipped, got %v", node)
			}
			if p.Depth() != 0 {
				t.Errorf("expected untouched stack, got depth %d", p.Depth())
			}
		})
	}
}

func TestParserResultEmpty(t *testing.T) {
	p := New(Options{})
	if root := p.Result(); root != nil {
		t.Errorf("expected nil root for empty rung, got %v", root)
	}
}

func TestParserPendingWithoutStack(t *testing.T) {
	// An OR with nothing on the stack still produces a rung root
	root := feed(t, row("OR", "M0000"))
	contact, ok := root.(*moast.Contact)
	if !ok {
		t.Fatalf("expected contact root, got %T", root)
	}
	if contact.Addr.String() != "M0000" {
		t.Errorf("expected M0000, got %s", contact.Addr)
	}
}

func TestParserIDsSurviveReset(t *testing.T) {
	p := New(Options{})

	first := p.Feed(row("LOAD", "P0000"))
	p.Result()
	p.Reset()

	second := p.Feed(row("LOAD", "P0001"))
	p.Result()

	if first.ID() >= second.ID() {
		t.Errorf("expected identifiers to keep increasing across rungs, got %d then %d",
			first.ID(), second.ID())
	}
	if p.Depth() != 1 {
		t.Errorf("expected fresh rung stack depth 1, got %d", p.Depth())
	}
}

func TestParserResetClearsPending(t *testing.T) {
	p := New(Options{})
	p.Feed(row("LOAD", "P0000"))
	p.Feed(row("OR", "P0001"))
	p.Reset()

	p.Feed(row("LOAD", "P0002"))
	root := p.Result()
	if _, ok := root.(*moast.Contact); !ok {
		t.Errorf("expected plain contact after reset, got %T", root)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		instr   string
		wantOK  bool
		family  Family
		compare bool
	}{
		{"load", "LOAD", true, FamilyLoad, false},
		{"and block", "ANDB", true, FamilyAndBlock, false},
		{"or block", "ORB", true, FamilyOrBlock, false},
		{"or compare", "OR<=", true, FamilyOr, true},
		{"and compare", "AND<>", true, FamilyAnd, true},
		{"out", "OUT", true, FamilyOut, false},
		{"unknown", "FROB", false, FamilyUnknown, false},
		{"dangling operator", "LD><", false, FamilyUnknown, false},
		{"bare operator", ">=", false, FamilyUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Lookup(tt.instr)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if m.Family != tt.family {
				t.Errorf("expected family %v, got %v", tt.family, m.Family)
			}
			if m.IsCompare != tt.compare {
				t.Errorf("expected compare=%v, got %v", tt.compare, m.IsCompare)
			}
		})
	}
}

func TestParseOperand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantAddr bool
		value    int64
	}{
		{"decimal", "42", true, false, 42},
		{"negative decimal", "-7", true, false, -7},
		{"hex h prefix", "H1F", true, false, 31},
		{"hex 0x prefix", "0x10", true, false, 16},
		{"device address", "D0100", true, true, 0},
		{"bit address", "D0100.8", true, true, 0},
		{"empty", "", false, false, 0},
		{"garbage", "@@", false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := ParseOperand(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			if op.IsAddress() != tt.wantAddr {
				t.Errorf("expected address=%v, got %v", tt.wantAddr, op.IsAddress())
			}
			if !tt.wantAddr && op.Value != tt.value {
				t.Errorf("expected value %d, got %d", tt.value, op.Value)
			}
		})
	}
}

func TestParseOperandPrefersNumbers(t *testing.T) {
	// A plain digit string must stay an immediate even though some
	// device parsers would accept it with a default letter
	op, ok := ParseOperand("100")
	if !ok || op.IsAddress() {
		t.Fatalf("expected immediate 100, got %v (ok=%v)", op, ok)
	}

	if _, err := modevice.Parse("100"); err == nil {
		t.Log("device parser also accepts bare digits; operand order still wins")
	}
}
