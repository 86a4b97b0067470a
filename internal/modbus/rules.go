// File: rules.go
// Title: Mapping Rule Table
// Description: One mapping rule per device type, translating native
//              numeric addresses into one Modbus memory space at a fixed
//              offset. The built-in table partitions the spaces the way
//              the target runtime lays them out; deployments with a
//              different partition supply their own table in TOML or
//              YAML.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial rule table with TOML/YAML loading

package modbus

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	moerror "github.com/WKDev/ModOne-sub002/foundation/core/error"
	modevice "github.com/WKDev/ModOne-sub002/internal/ladder/device"
)

// Rule maps one device type into a Modbus memory space
type Rule struct {
	Device modevice.Type
	Memory MemoryType
	Offset int
}

// Rules is the rule table, one entry per device type
type Rules map[modevice.Type]Rule

// DefaultRules returns the built-in mapping table
func DefaultRules() Rules {
	return Rules{
		modevice.TypeP: {Device: modevice.TypeP, Memory: Coil, Offset: 0},
		modevice.TypeM: {Device: modevice.TypeM, Memory: Coil, Offset: 2048},
		modevice.TypeK: {Device: modevice.TypeK, Memory: Coil, Offset: 8192},
		modevice.TypeT: {Device: modevice.TypeT, Memory: Coil, Offset: 12288},
		modevice.TypeC: {Device: modevice.TypeC, Memory: Coil, Offset: 12800},
		modevice.TypeF: {Device: modevice.TypeF, Memory: DiscreteInput, Offset: 0},
		modevice.TypeD: {Device: modevice.TypeD, Memory: HoldingRegister, Offset: 0},
		modevice.TypeR: {Device: modevice.TypeR, Memory: HoldingRegister, Offset: 10000},
		modevice.TypeZ: {Device: modevice.TypeZ, Memory: HoldingRegister, Offset: 20240},
		modevice.TypeN: {Device: modevice.TypeN, Memory: InputRegister, Offset: 0},
	}
}

// ruleEntry is the on-disk shape of one rule
type ruleEntry struct {
	Device string `toml:"device" yaml:"device"`
	Memory string `toml:"memory" yaml:"memory"`
	Offset int    `toml:"offset" yaml:"offset"`
}

// rulesFile is the on-disk shape of a rule table
type rulesFile struct {
	Rules []ruleEntry `toml:"rules" yaml:"rules"`
}

// LoadRules loads a mapping table from a TOML or YAML file, detected by
// extension. Device types absent from the file keep their default rule.
func LoadRules(path string) (Rules, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, moerror.Wrap(err, "reading rule table").
			WithCode(moerror.CodeConfigError).
			WithDetail("path", path)
	}

	var file rulesFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(content, &file); err != nil {
			return nil, moerror.Wrap(err, "parsing TOML rule table").
				WithCode(moerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &file); err != nil {
			return nil, moerror.Wrap(err, "parsing YAML rule table").
				WithCode(moerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	default:
		return nil, moerror.Newf("unsupported rule table format %q", filepath.Ext(path)).
			WithCode(moerror.CodeInvalidConfig).
			WithDetail("path", path)
	}

	rules := DefaultRules()
	for _, entry := range file.Rules {
		if len(entry.Device) != 1 {
			return nil, moerror.Newf("unknown device type %q in rule table", entry.Device).
				WithCode(moerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
		deviceType, ok := modevice.ParseType(entry.Device[0])
		if !ok {
			return nil, moerror.Newf("unknown device type %q in rule table", entry.Device).
				WithCode(moerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
		memory, err := ParseMemoryType(entry.Memory)
		if err != nil {
			return nil, moerror.Wrap(err, "reading rule table").
				WithCode(moerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
		if entry.Offset < 0 {
			return nil, moerror.Newf("negative offset %d for device %s", entry.Offset, entry.Device).
				WithCode(moerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
		rules[deviceType] = Rule{Device: deviceType, Memory: memory, Offset: entry.Offset}
	}
	return rules, nil
}
