// File: layout.go
// Title: Grid Layout
// Description: Assigns grid cells to every node of a rung. Series blocks
//              extend left-to-right along a shared top row; parallel
//              blocks stack branches top-to-bottom along a shared left
//              column. A block's own cell is the top-left of its extent.
//              Output elements line up in the column just past the logic
//              tree, one per row.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15
//
// Change History:
// - 2026-08-15 v0.1.0: Initial layout

package builder

import (
	moast "github.com/WKDev/ModOne-sub002/internal/ladder/ast"
	moprogram "github.com/WKDev/ModOne-sub002/internal/ladder/program"
)

// positioner is satisfied by every node type through its embedded
// metadata
type positioner interface {
	SetCell(moast.Cell)
}

// layoutNetwork assigns cells to the rung's logic tree and its outputs
func layoutNetwork(net *moprogram.Network) {
	width := 0
	if net.Root != nil {
		_, width = layoutNode(net.Root, 0, 0)
	}

	for i, out := range net.Outputs {
		place(out, moast.Cell{Row: i, Col: width})
	}
}

// layoutNode positions a subtree with its top-left corner at (row, col)
// and returns the subtree's (height, width) in cells.
func layoutNode(n moast.Node, row, col int) (height, width int) {
	block, ok := n.(*moast.Block)
	if !ok {
		place(n, moast.Cell{Row: row, Col: col})
		return 1, 1
	}

	place(block, moast.Cell{Row: row, Col: col})

	if block.Kind == moast.BlockSeries {
		cur := col
		for _, child := range block.Children {
			h, w := layoutNode(child, row, cur)
			cur += w
			if h > height {
				height = h
			}
		}
		return height, cur - col
	}

	cur := row
	for _, child := range block.Children {
		h, w := layoutNode(child, cur, col)
		cur += h
		if w > width {
			width = w
		}
	}
	return cur - row, width
}

func place(n moast.Node, cell moast.Cell) {
	if p, ok := n.(positioner); ok {
		p.SetCell(cell)
	}
}
