// File: ranges.go
// Title: Device Range Table
// Description: Defines the per-type inclusive address range table. The table
//              is configuration, not a hardcoded invariant: callers may load
//              a table from a TOML or YAML file (auto-detected by extension)
//              to match a specific hardware profile, or use the built-in
//              defaults.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-11
// Modified: 2026-08-11
//
// Change History:
// - 2026-08-11 v0.1.0: Initial range table with TOML/YAML loading

package device

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	moerror "github.com/WKDev/ModOne-sub002/foundation/core/error"
)

// MaxBit is the highest addressable bit of a word device
const MaxBit = 15

// MaxIndexRegister is the highest index register number
const MaxIndexRegister = 15

// Ranges maps each device type to its highest valid address number
type Ranges map[Type]int

// DefaultRanges returns the built-in range table
func DefaultRanges() Ranges {
	return Ranges{
		TypeP: 2047,
		TypeM: 8191,
		TypeK: 2047,
		TypeF: 2047,
		TypeT: 511,
		TypeC: 511,
		TypeD: 9999,
		TypeR: 10239,
		TypeZ: 15,
		TypeN: 4095,
	}
}

// Max returns the highest valid address number for the type, or -1 if the
// table carries no entry for it
func (r Ranges) Max(t Type) int {
	max, ok := r[t]
	if !ok {
		return -1
	}
	return max
}

// Contains reports whether the address' numeric part lies inside the
// configured range for its device type
func (r Ranges) Contains(addr Address) bool {
	max := r.Max(addr.Type)
	return max >= 0 && addr.Num >= 0 && addr.Num <= max
}

// rangesFile is the on-disk shape of a range table
type rangesFile struct {
	Ranges map[string]int `toml:"ranges" yaml:"ranges"`
}

// LoadRanges loads a range table from a TOML or YAML file, detected by
// extension. Types absent from the file keep their default range.
func LoadRanges(path string) (Ranges, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, moerror.Wrap(err, "reading range table").
			WithCode(moerror.CodeConfigError).
			WithDetail("path", path)
	}

	var file rangesFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(content, &file); err != nil {
			return nil, moerror.Wrap(err, "parsing TOML range table").
				WithCode(moerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &file); err != nil {
			return nil, moerror.Wrap(err, "parsing YAML range table").
				WithCode(moerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	default:
		return nil, moerror.Newf("unsupported range table format: %s", filepath.Ext(path)).
			WithCode(moerror.CodeInvalidConfig).
			WithDetail("path", path)
	}

	ranges := DefaultRanges()
	for letter, max := range file.Ranges {
		if letter == "" {
			continue
		}
		t, ok := ParseType(letter[0])
		if !ok || len(letter) != 1 {
			return nil, moerror.Newf("unknown device letter %q in range table", letter).
				WithCode(moerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
		if max < 0 {
			return nil, moerror.Newf("negative range for device %s", letter).
				WithCode(moerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
		ranges[t] = max
	}

	return ranges, nil
}
