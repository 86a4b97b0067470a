// File: grid.go
// Title: Grid Measurements
// Description: Read-only measurement queries over a positioned network.
//              Container blocks share their top-left cell with their
//              first child, so every query here skips them and works on
//              the placed elements only. Nothing in this package mutates
//              a network.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-16
// Modified: 2026-08-16
//
// Change History:
// - 2026-08-16 v0.1.0: Initial measurements

package grid

import (
	moast "github.com/WKDev/ModOne-sub002/internal/ladder/ast"
	moprogram "github.com/WKDev/ModOne-sub002/internal/ladder/program"
)

// elements yields the network's placed elements, containers excluded
func elements(net *moprogram.Network) []moast.Node {
	var out []moast.Node
	for _, n := range net.Nodes() {
		if _, ok := n.(*moast.Block); ok {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Width returns the highest occupied column plus one
func Width(net *moprogram.Network) int {
	width := 0
	for _, n := range elements(net) {
		if c := n.Cell().Col + 1; c > width {
			width = c
		}
	}
	return width
}

// Height returns the highest occupied row plus one
func Height(net *moprogram.Network) int {
	height := 0
	for _, n := range elements(net) {
		if r := n.Cell().Row + 1; r > height {
			height = r
		}
	}
	return height
}

// NodeAt returns the element placed at the cell
func NodeAt(net *moprogram.Network, row, col int) (moast.Node, bool) {
	for _, n := range elements(net) {
		cell := n.Cell()
		if cell.Row == row && cell.Col == col {
			return n, true
		}
	}
	return nil, false
}

// Occupied reports whether any element sits at the cell
func Occupied(net *moprogram.Network, row, col int) bool {
	_, ok := NodeAt(net, row, col)
	return ok
}

// Bounds is an inclusive rectangle of grid cells
type Bounds struct {
	MinRow int
	MinCol int
	MaxRow int
	MaxCol int
}

// BoundingBox computes the smallest rectangle covering the given nodes,
// containers excluded. The second return value is false when the set
// holds no placed elements.
func BoundingBox(nodes []moast.Node) (Bounds, bool) {
	found := false
	var b Bounds

	for _, n := range nodes {
		if _, ok := n.(*moast.Block); ok {
			continue
		}
		cell := n.Cell()
		if !found {
			b = Bounds{MinRow: cell.Row, MinCol: cell.Col, MaxRow: cell.Row, MaxCol: cell.Col}
			found = true
			continue
		}
		if cell.Row < b.MinRow {
			b.MinRow = cell.Row
		}
		if cell.Col < b.MinCol {
			b.MinCol = cell.Col
		}
		if cell.Row > b.MaxRow {
			b.MaxRow = cell.Row
		}
		if cell.Col > b.MaxCol {
			b.MaxCol = cell.Col
		}
	}
	return b, found
}

// CountByRow counts elements per occupied row
func CountByRow(net *moprogram.Network) map[int]int {
	counts := make(map[int]int)
	for _, n := range elements(net) {
		counts[n.Cell().Row]++
	}
	return counts
}

// CountByCol counts elements per occupied column
func CountByCol(net *moprogram.Network) map[int]int {
	counts := make(map[int]int)
	for _, n := range elements(net) {
		counts[n.Cell().Col]++
	}
	return counts
}
