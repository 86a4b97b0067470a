// File: doc.go
// Title: Modbus Package Documentation
// Description: Package overview for the address mapper.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial documentation

// Package modbus translates native device addresses into the four flat
// Modbus address spaces and back.
//
// Translation is table-driven: one Rule per device type places that
// device's window at a fixed offset inside one memory space. The
// built-in table matches the target runtime's partition and can be
// replaced wholesale from a TOML or YAML file. Bit access on a word
// device degrades into the coil window backing the word storage at
// (offset+number)*16+bit; index-registered addresses cannot be mapped
// statically and report as unresolved. Timer and counter current values
// sit in fixed holding-register windows outside the rule table.
package modbus
