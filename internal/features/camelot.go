// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package features

import (
	"fmt"
	"strconv"
	"strings"
)

// IncompatibleDistance is returned for keys on different wheel positions and modes,
// and for keys that cannot be parsed.
const IncompatibleDistance = 10

// CamelotWheel lists all 24 Camelot positions: 1A..12A followed by 1B..12B.
var CamelotWheel = func() []string {
	keys := make([]string, 0, 24)
	for _, mode := range []byte{'A', 'B'} {
		for n := 1; n <= 12; n++ {
			keys = append(keys, strconv.Itoa(n)+string(mode))
		}
	}
	return keys
}()

// Key is a parsed Camelot key. Mode A is minor, B is major.
type Key struct {
	Number int
	Mode   byte
}

// String returns the key in Camelot notation.
func (k Key) String() string {
	return strconv.Itoa(k.Number) + string(k.Mode)
}

// ParseKey parses Camelot notation such as "8A" or "12b".
func ParseKey(s string) (Key, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Key{}, fmt.Errorf("invalid camelot key %q", s)
	}

	mode := s[len(s)-1]
	if mode != 'A' && mode != 'B' {
		return Key{}, fmt.Errorf("invalid camelot mode in %q", s)
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 1 || n > 12 {
		return Key{}, fmt.Errorf("invalid camelot number in %q", s)
	}

	return Key{Number: n, Mode: mode}, nil
}

// ValidKey reports whether s is valid Camelot notation.
func ValidKey(s string) bool {
	_, err := ParseKey(s)
	return err == nil
}

// KeyDistance returns the harmonic distance between two Camelot keys:
//
//   - 0 for identical keys
//   - circular numeric distance for keys sharing a mode
//   - 1 for relative major/minor (same number, other mode)
//   - IncompatibleDistance otherwise
func KeyDistance(a, b string) int {
	ka, err := ParseKey(a)
	if err != nil {
		return IncompatibleDistance
	}
	kb, err := ParseKey(b)
	if err != nil {
		return IncompatibleDistance
	}
	return ka.Distance(kb)
}

// Distance returns the harmonic distance from k to other.
func (k Key) Distance(other Key) int {
	switch {
	case k == other:
		return 0
	case k.Mode == other.Mode:
		d := k.Number - other.Number
		if d < 0 {
			d = -d
		}
		if 12-d < d {
			d = 12 - d
		}
		return d
	case k.Number == other.Number:
		return 1
	default:
		return IncompatibleDistance
	}
}
