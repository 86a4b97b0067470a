// File: grid_test.go
// Title: Grid Measurement Tests
// Description: Tests for the read-only grid queries over positioned
//              networks.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-16
// Modified: 2026-08-16
//
// Change History:
// - 2026-08-16 v0.1.0: Initial tests

package grid

import (
	"testing"

	moast "github.com/WKDev/ModOne-sub002/internal/ladder/ast"
	modevice "github.com/WKDev/ModOne-sub002/internal/ladder/device"
	moprogram "github.com/WKDev/ModOne-sub002/internal/ladder/program"
)

// testNetwork builds the positioned rung ((P0 AND P1) OR P2) -> M0:
//
//	(0,0) P0000  (0,1) P0001  (0,2) M0000
//	(1,0) P0002
func testNetwork() *moprogram.Network {
	at := func(id int, addr modevice.Address, row, col int) *moast.Contact {
		return &moast.Contact{
			Meta: moast.Meta{NodeID: id, Pos: moast.Cell{Row: row, Col: col}},
			Kind: moast.ContactNO,
			Addr: addr,
		}
	}

	a := at(1, modevice.NewAddress(modevice.TypeP, 0), 0, 0)
	b := at(2, modevice.NewAddress(modevice.TypeP, 1), 0, 1)
	c := at(3, modevice.NewAddress(modevice.TypeP, 2), 1, 0)

	series := &moast.Block{
		Meta:     moast.Meta{NodeID: 4, Pos: moast.Cell{Row: 0, Col: 0}},
		Kind:     moast.BlockSeries,
		Children: []moast.Node{a, b},
	}
	parallel := &moast.Block{
		Meta:     moast.Meta{NodeID: 5, Pos: moast.Cell{Row: 0, Col: 0}},
		Kind:     moast.BlockParallel,
		Children: []moast.Node{series, c},
	}

	coil := &moast.Coil{
		Meta: moast.Meta{NodeID: 6, Pos: moast.Cell{Row: 0, Col: 2}},
		Kind: moast.CoilOut,
		Addr: modevice.NewAddress(modevice.TypeM, 0),
	}

	return &moprogram.Network{Step: 1, Root: parallel, Outputs: []moast.Node{coil}}
}

func TestWidthHeight(t *testing.T) {
	net := testNetwork()

	if got := Width(net); got != 3 {
		t.Errorf("expected width 3, got %d", got)
	}
	if got := Height(net); got != 2 {
		t.Errorf("expected height 2, got %d", got)
	}
}

func TestWidthHeightEmpty(t *testing.T) {
	net := &moprogram.Network{Step: 1}

	if got := Width(net); got != 0 {
		t.Errorf("expected width 0, got %d", got)
	}
	if got := Height(net); got != 0 {
		t.Errorf("expected height 0, got %d", got)
	}
}

func TestWidthIgnoresBlocks(t *testing.T) {
	// The parallel block shares (0,0) with its first leaf; only leaves
	// and outputs count toward the measurements
	net := testNetwork()
	node, ok := NodeAt(net, 0, 0)
	if !ok {
		t.Fatal("expected node at (0,0)")
	}
	if _, isBlock := node.(*moast.Block); isBlock {
		t.Errorf("expected element at (0,0), got container %v", node)
	}
}

func TestNodeAt(t *testing.T) {
	net := testNetwork()

	tests := []struct {
		name   string
		row    int
		col    int
		wantID int
		wantOK bool
	}{
		{"top-left contact", 0, 0, 1, true},
		{"second contact", 0, 1, 2, true},
		{"parallel branch", 1, 0, 3, true},
		{"coil", 0, 2, 6, true},
		{"empty cell", 1, 1, 0, false},
		{"outside grid", 5, 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, ok := NodeAt(net, tt.row, tt.col)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && node.ID() != tt.wantID {
				t.Errorf("expected node %d, got %d", tt.wantID, node.ID())
			}
		})
	}
}

func TestOccupied(t *testing.T) {
	net := testNetwork()

	if !Occupied(net, 0, 0) {
		t.Error("expected (0,0) occupied")
	}
	if Occupied(net, 1, 1) {
		t.Error("expected (1,1) empty")
	}
}

func TestBoundingBox(t *testing.T) {
	net := testNetwork()

	b, ok := BoundingBox(net.Nodes())
	if !ok {
		t.Fatal("expected bounds over full rung")
	}
	want := Bounds{MinRow: 0, MinCol: 0, MaxRow: 1, MaxCol: 2}
	if b != want {
		t.Errorf("expected %+v, got %+v", want, b)
	}
}

func TestBoundingBoxSubset(t *testing.T) {
	net := testNetwork()

	var subset []moast.Node
	for _, n := range net.Nodes() {
		if n.ID() == 2 || n.ID() == 3 {
			subset = append(subset, n)
		}
	}

	b, ok := BoundingBox(subset)
	if !ok {
		t.Fatal("expected bounds over subset")
	}
	want := Bounds{MinRow: 0, MinCol: 0, MaxRow: 1, MaxCol: 1}
	if b != want {
		t.Errorf("expected %+v, got %+v", want, b)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	if _, ok := BoundingBox(nil); ok {
		t.Error("expected no bounds for empty set")
	}

	onlyBlock := []moast.Node{&moast.Block{Meta: moast.Meta{NodeID: 1}}}
	if _, ok := BoundingBox(onlyBlock); ok {
		t.Error("expected no bounds for container-only set")
	}
}

func TestCountByRowCol(t *testing.T) {
	net := testNetwork()

	byRow := CountByRow(net)
	if byRow[0] != 3 || byRow[1] != 1 {
		t.Errorf("expected rows {0:3 1:1}, got %v", byRow)
	}

	byCol := CountByCol(net)
	if byCol[0] != 2 || byCol[1] != 1 || byCol[2] != 1 {
		t.Errorf("expected cols {0:2 1:1 2:1}, got %v", byCol)
	}
}
