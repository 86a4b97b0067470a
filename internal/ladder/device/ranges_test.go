// File: ranges_test.go
// Title: Device Range Table Unit Tests
// Description: Tests for the configurable range table including TOML and
//              YAML loading with defaults for absent types.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-11
// Modified: 2026-08-11
//
// Change History:
// - 2026-08-11 v0.1.0: Initial test suite

package device

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRanges_Bounds(t *testing.T) {
	ranges := DefaultRanges()

	tests := []struct {
		addr  Address
		valid bool
	}{
		{NewAddress(TypeP, 2047), true},
		{NewAddress(TypeP, 2048), false},
		{NewAddress(TypeM, 8191), true},
		{NewAddress(TypeM, 8192), false},
		{NewAddress(TypeZ, 15), true},
		{NewAddress(TypeZ, 16), false},
		{NewAddress(TypeD, 0), true},
	}

	for _, tt := range tests {
		if got := ranges.Contains(tt.addr); got != tt.valid {
			t.Errorf("Contains(%s) = %v, want %v", tt.addr, got, tt.valid)
		}
	}
}

func TestDefaultRanges_CoversAllTypes(t *testing.T) {
	ranges := DefaultRanges()
	for _, typ := range Types {
		if ranges.Max(typ) < 0 {
			t.Errorf("Default range table missing entry for %s", typ)
		}
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Writing temp file: %v", err)
	}
	return path
}

func TestLoadRanges_TOML(t *testing.T) {
	path := writeTempFile(t, "profile.toml", "[ranges]\nP = 1023\nD = 4095\n")

	ranges, err := LoadRanges(path)
	if err != nil {
		t.Fatalf("LoadRanges failed: %v", err)
	}
	if ranges.Max(TypeP) != 1023 {
		t.Errorf("Expected P max 1023, got %d", ranges.Max(TypeP))
	}
	if ranges.Max(TypeD) != 4095 {
		t.Errorf("Expected D max 4095, got %d", ranges.Max(TypeD))
	}
	// Absent types keep defaults
	if ranges.Max(TypeM) != 8191 {
		t.Errorf("Expected default M max 8191, got %d", ranges.Max(TypeM))
	}
}

func TestLoadRanges_YAML(t *testing.T) {
	path := writeTempFile(t, "profile.yaml", "ranges:\n  M: 4095\n")

	ranges, err := LoadRanges(path)
	if err != nil {
		t.Fatalf("LoadRanges failed: %v", err)
	}
	if ranges.Max(TypeM) != 4095 {
		t.Errorf("Expected M max 4095, got %d", ranges.Max(TypeM))
	}
}

func TestLoadRanges_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"Unknown device letter", "bad.toml", "[ranges]\nQ = 100\n"},
		{"Negative range", "neg.toml", "[ranges]\nP = -1\n"},
		{"Unsupported extension", "bad.ini", "[ranges]\nP = 100\n"},
		{"Malformed TOML", "broken.toml", "[ranges\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.file, tt.content)
			if _, err := LoadRanges(path); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
