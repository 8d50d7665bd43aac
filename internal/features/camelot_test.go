// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package features

import "testing"

func TestKeyDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"8A", "8A", 0},
		{"8A", "9A", 1},
		{"8A", "8B", 1},
		{"8A", "2A", 6},
		{"1A", "12A", 1},
		{"12B", "2B", 2},
		{"8a", "8A", 0},
		{"8A", "9B", IncompatibleDistance},
		{"8A", "", IncompatibleDistance},
		{"13A", "1A", IncompatibleDistance},
		{"C#m", "8A", IncompatibleDistance},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			t.Parallel()
			if got := KeyDistance(tt.a, tt.b); got != tt.want {
				t.Errorf("KeyDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := KeyDistance(tt.b, tt.a); got != tt.want {
				t.Errorf("KeyDistance(%q, %q) = %d, want %d (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestCamelotWheel(t *testing.T) {
	t.Parallel()

	if len(CamelotWheel) != 24 {
		t.Fatalf("wheel has %d keys, want 24", len(CamelotWheel))
	}
	seen := make(map[string]bool)
	for _, k := range CamelotWheel {
		if !ValidKey(k) {
			t.Errorf("wheel key %q does not parse", k)
		}
		if seen[k] {
			t.Errorf("duplicate wheel key %q", k)
		}
		seen[k] = true
	}
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	k, err := ParseKey(" 11b ")
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if k.Number != 11 || k.Mode != 'B' || k.String() != "11B" {
		t.Errorf("ParseKey = %+v", k)
	}

	for _, bad := range []string{"", "A", "0A", "8C", "xA"} {
		if _, err := ParseKey(bad); err == nil {
			t.Errorf("ParseKey(%q) expected error", bad)
		}
	}
}
