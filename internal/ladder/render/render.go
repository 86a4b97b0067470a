// File: render.go
// Title: ASCII Network Rendering
// Description: Renders positioned networks as plain-text ladder art for
//              terminal display. The renderer works on grid cells only;
//              callers apply any styling on top of the returned lines.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial renderer

package render

import (
	"fmt"
	"strings"

	moast "github.com/WKDev/ModOne-sub002/internal/ladder/ast"
	mogrid "github.com/WKDev/ModOne-sub002/internal/ladder/grid"
	moprogram "github.com/WKDev/ModOne-sub002/internal/ladder/program"
)

// minCellWidth keeps narrow columns readable
const minCellWidth = 8

// Network renders one positioned rung as text lines. The first row is
// the main wire and runs rail to rail; branch rows stop at their last
// element.
func Network(net *moprogram.Network) []string {
	width := mogrid.Width(net)
	height := mogrid.Height(net)
	if width == 0 || height == 0 {
		return []string{"|" + strings.Repeat("-", minCellWidth) + "|"}
	}

	labels := make([][]string, height)
	for r := range labels {
		labels[r] = make([]string, width)
	}
	colWidth := make([]int, width)
	lastCol := make([]int, height)
	for r := range lastCol {
		lastCol[r] = -1
	}

	for _, n := range net.Nodes() {
		if _, ok := n.(*moast.Block); ok {
			continue
		}
		cell := n.Cell()
		label := n.String()
		labels[cell.Row][cell.Col] = label
		if len(label) > colWidth[cell.Col] {
			colWidth[cell.Col] = len(label)
		}
		if cell.Col > lastCol[cell.Row] {
			lastCol[cell.Row] = cell.Col
		}
	}
	for c := range colWidth {
		if colWidth[c] < minCellWidth {
			colWidth[c] = minCellWidth
		}
	}

	lines := make([]string, height)
	for r := 0; r < height; r++ {
		var b strings.Builder
		b.WriteString("|")
		for c := 0; c < width; c++ {
			b.WriteString(cellText(labels[r][c], colWidth[c], r == 0 || c <= lastCol[r]))
		}
		b.WriteString("|")
		lines[r] = b.String()
	}
	return lines
}

// cellText pads a label to the column width, filling with wire dashes on
// connected cells and blanks elsewhere
func cellText(label string, width int, wired bool) string {
	fill := " "
	if wired {
		fill = "-"
	}
	pad := width - len(label)
	left := pad / 2
	right := pad - left
	return strings.Repeat(fill, left+1) + label + strings.Repeat(fill, right+1)
}

// Program renders every network of a program, each preceded by a step
// heading and its comment when present
func Program(prog *moprogram.Program) string {
	var b strings.Builder
	for i, net := range prog.Networks {
		if i > 0 {
			b.WriteString("\n")
		}
		heading := fmt.Sprintf("Network %d", net.Step)
		if net.Comment != "" {
			heading += "  " + net.Comment
		}
		b.WriteString(heading)
		b.WriteString("\n")
		for _, line := range Network(net) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
