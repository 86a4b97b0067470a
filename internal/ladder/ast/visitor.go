// File: visitor.go
// Title: Ladder AST Visitor
// Description: Defines the visitor interface for traversing ladder logic
//              trees and a BaseVisitor with depth-first defaults that
//              concrete visitors can embed and selectively override.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial visitor implementation

package ast

import (
	modevice "github.com/WKDev/ModOne-sub002/internal/ladder/device"
)

// Visitor interface for traversing ladder nodes using the visitor pattern
type Visitor interface {
	VisitContact(contact *Contact) interface{}
	VisitCoil(coil *Coil) interface{}
	VisitTimer(timer *Timer) interface{}
	VisitCounter(counter *Counter) interface{}
	VisitCompare(compare *Compare) interface{}
	VisitMath(math *Math) interface{}
	VisitBlock(block *Block) interface{}
}

// BaseVisitor provides default implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods; the
// default block behavior descends into children.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitContact(contact *Contact) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitCoil(coil *Coil) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitTimer(timer *Timer) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitCounter(counter *Counter) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitCompare(compare *Compare) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitMath(math *Math) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitBlock(block *Block) interface{} {
	for _, child := range block.Children {
		child.Accept(bv)
	}
	return nil
}

// AddressCollector gathers every device address referenced anywhere in a
// tree, in first-encounter order and without duplicates. It implements
// Visitor directly so the block traversal dispatches back to it.
type AddressCollector struct {
	seen  map[string]bool
	addrs []modevice.Address
}

// NewAddressCollector creates an empty collector
func NewAddressCollector() *AddressCollector {
	return &AddressCollector{seen: make(map[string]bool)}
}

// Collect visits the tree and returns the collector for chaining
func (c *AddressCollector) Collect(n Node) *AddressCollector {
	if n != nil {
		n.Accept(c)
	}
	return c
}

// Addresses returns the collected addresses in first-encounter order
func (c *AddressCollector) Addresses() []modevice.Address {
	return c.addrs
}

func (c *AddressCollector) add(addr modevice.Address) {
	key := addr.String()
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.addrs = append(c.addrs, addr)
}

func (c *AddressCollector) VisitContact(contact *Contact) interface{} {
	c.add(contact.Addr)
	return nil
}

func (c *AddressCollector) VisitCoil(coil *Coil) interface{} {
	c.add(coil.Addr)
	return nil
}

func (c *AddressCollector) VisitTimer(timer *Timer) interface{} {
	c.add(timer.Addr)
	return nil
}

func (c *AddressCollector) VisitCounter(counter *Counter) interface{} {
	c.add(counter.Addr)
	return nil
}

func (c *AddressCollector) VisitCompare(compare *Compare) interface{} {
	if compare.Left.IsAddress() {
		c.add(compare.Left.Addr)
	}
	if compare.Right.IsAddress() {
		c.add(compare.Right.Addr)
	}
	return nil
}

func (c *AddressCollector) VisitMath(math *Math) interface{} {
	for _, src := range math.Sources {
		if src.IsAddress() {
			c.add(src.Addr)
		}
	}
	c.add(math.Dest)
	return nil
}

func (c *AddressCollector) VisitBlock(block *Block) interface{} {
	for _, child := range block.Children {
		child.Accept(c)
	}
	return nil
}
