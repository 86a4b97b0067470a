// File: builder.go
// Title: Program Builder
// Description: Drives the row reader and instruction parser over a whole
//              mnemonic export, producing a program with one network per
//              step, grid positions assigned to every node, and a symbol
//              table collected from row comments.
// Author: WKDev
// Version: v0.1.1
// Created: 2026-08-15
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-15 v0.1.0: Initial builder
// - 2026-08-30 v0.1.1: Record author and version on the program

package builder

import (
	"sort"

	molog "github.com/WKDev/ModOne-sub002/foundation/core/log"
	moast "github.com/WKDev/ModOne-sub002/internal/ladder/ast"
	modevice "github.com/WKDev/ModOne-sub002/internal/ladder/device"
	moparser "github.com/WKDev/ModOne-sub002/internal/ladder/parser"
	moprogram "github.com/WKDev/ModOne-sub002/internal/ladder/program"
	moreader "github.com/WKDev/ModOne-sub002/internal/ladder/reader"
)

// Options configures a Builder
type Options struct {
	// Name is recorded on the built program, usually the source file name
	Name string

	// Author is recorded on the built program, when known
	Author string

	// Version is recorded on the built program, when known
	Version string

	// Logger receives build diagnostics. When nil the package default
	// logger is used.
	Logger *molog.Logger
}

// Builder turns mnemonic export text into a program
type Builder struct {
	name    string
	author  string
	version string
	logger  *molog.Logger
}

// New creates a builder
func New(opts Options) *Builder {
	logger := opts.Logger
	if logger == nil {
		logger = molog.GetDefault().WithName("builder")
	}
	return &Builder{
		name:    opts.Name,
		author:  opts.Author,
		version: opts.Version,
		logger:  logger,
	}
}

// Build parses the export text and returns the resulting program. Rungs
// are built in ascending step order regardless of their order in the
// source. Malformed rows and unusable instructions are skipped; Build
// never fails on content, only the validator judges it.
func (b *Builder) Build(source string) (*moprogram.Program, error) {
	groups := moreader.New(source).Groups()
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Step < groups[j].Step
	})

	prog := moprogram.New(b.name)
	prog.Author = b.author
	prog.Version = b.version
	p := moparser.New(moparser.Options{Logger: b.logger})

	for _, group := range groups {
		prog.Networks = append(prog.Networks, b.buildNetwork(p, group, prog.Symbols))
	}
	prog.Touch()

	b.logger.Info("program built", molog.Fields{
		"name":     b.name,
		"networks": len(prog.Networks),
		"symbols":  prog.Symbols.Len(),
	})
	return prog, nil
}

// buildNetwork replays one step group through the parser and lays out
// the resulting rung
func (b *Builder) buildNetwork(p *moparser.Parser, group moreader.Group, symbols *moprogram.SymbolTable) *moprogram.Network {
	p.Reset()
	net := &moprogram.Network{Step: group.Step}

	for _, row := range group.Rows {
		collectSymbols(symbols, row)
		if net.Comment == "" {
			net.Comment = row.Comment
		}

		node := p.Feed(row)
		if node == nil {
			continue
		}
		if moast.IsOutput(node) {
			net.Outputs = append(net.Outputs, node)
			continue
		}
		if _, ok := node.(*moast.Math); ok {
			net.Outputs = append(net.Outputs, node)
		}
	}

	net.Root = p.Result()
	layoutNetwork(net)
	return net
}

// collectSymbols records the row comment against every operand that
// parses as a device address. The symbol table keeps the first comment
// per address.
func collectSymbols(symbols *moprogram.SymbolTable, row moreader.Row) {
	if row.Comment == "" {
		return
	}
	for _, operand := range row.OperandList() {
		if !modevice.Looks(operand) {
			continue
		}
		addr, err := modevice.Parse(operand)
		if err != nil {
			continue
		}
		symbols.Add(addr.String(), row.Comment)
	}
}
