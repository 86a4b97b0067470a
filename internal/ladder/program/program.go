// File: program.go
// Title: Ladder Program Model
// Description: Value types describing a parsed ladder program: the
//              program head with identity metadata, the ordered list of
//              networks (rungs), and the symbol table collecting device
//              comments.
// Author: WKDev
// Version: v0.1.1
// Created: 2026-08-15
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-15 v0.1.0: Initial program model
// - 2026-08-30 v0.1.1: Author, version and modification timestamp

package program

import (
	"sort"
	"time"

	"github.com/google/uuid"

	moast "github.com/WKDev/ModOne-sub002/internal/ladder/ast"
)

// Program is a fully built ladder program
type Program struct {
	// ID uniquely identifies this build of the program
	ID uuid.UUID

	// Name is the source name, usually the export file name
	Name string

	// Author names who produced the source export, when known
	Author string

	// Version is the source revision string, when known
	Version string

	// CreatedAt records when the program was built
	CreatedAt time.Time

	// ModifiedAt records the last change to the program; for a fresh
	// build it matches CreatedAt
	ModifiedAt time.Time

	// Networks holds the rungs in ascending step order
	Networks []*Network

	// Symbols collects device comments seen anywhere in the source
	Symbols *SymbolTable
}

// New creates an empty program with a fresh identity
func New(name string) *Program {
	now := time.Now()
	return &Program{
		ID:         uuid.New(),
		Name:       name,
		CreatedAt:  now,
		ModifiedAt: now,
		Symbols:    NewSymbolTable(),
	}
}

// Touch updates the modification timestamp
func (p *Program) Touch() {
	p.ModifiedAt = time.Now()
}

// NodeCount returns the total number of nodes across all networks,
// containers included
func (p *Program) NodeCount() int {
	total := 0
	for _, n := range p.Networks {
		total += len(n.Nodes())
	}
	return total
}

// Network is one rung: a single logic tree driving zero or more output
// elements
type Network struct {
	// Step is the rung's step number from the source
	Step int

	// Comment is the rung commentary, taken from the first commented
	// row of the rung
	Comment string

	// Root is the input logic tree; nil for rungs with outputs only
	Root moast.Node

	// Outputs holds the output-class nodes (coils, timers, counters,
	// math) in source order
	Outputs []moast.Node
}

// Nodes returns the rung's nodes in pre-order, containers included,
// with output nodes appended in source order
func (n *Network) Nodes() []moast.Node {
	nodes := moast.Flatten(n.Root)
	return append(nodes, n.Outputs...)
}

// Symbol is one device comment
type Symbol struct {
	Address string
	Comment string
}

// SymbolTable maps device address strings to their comments. The first
// comment seen for an address wins; later rows never overwrite it.
type SymbolTable struct {
	symbols map[string]Symbol
}

// NewSymbolTable creates an empty symbol table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]Symbol)}
}

// Add records a comment for an address. Empty comments and addresses
// already present are ignored.
func (t *SymbolTable) Add(address, comment string) {
	if address == "" || comment == "" {
		return
	}
	if _, exists := t.symbols[address]; exists {
		return
	}
	t.symbols[address] = Symbol{Address: address, Comment: comment}
}

// Lookup returns the comment recorded for an address
func (t *SymbolTable) Lookup(address string) (string, bool) {
	s, ok := t.symbols[address]
	if !ok {
		return "", false
	}
	return s.Comment, true
}

// Len returns the number of recorded symbols
func (t *SymbolTable) Len() int {
	return len(t.symbols)
}

// All returns the symbols sorted by address for stable output
func (t *SymbolTable) All() []Symbol {
	out := make([]Symbol, 0, len(t.symbols))
	for _, s := range t.symbols {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Address < out[j].Address
	})
	return out
}
