// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cadence/internal/models"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "resolve", "testdata/records.json")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.Contains(out, "5 records, 4 normalized, 2 canonical tracks") {
		t.Errorf("missing summary line:\n%s", out)
	}
	for _, want := range []string{"spotify:sp-gl", "deezer:3135556", "4:08", "deezer, youtube"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestResolveCommandJSON(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "--json", "resolve", "testdata/records.json")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	var tracks []models.CanonicalTrack
	if err := json.Unmarshal([]byte(out), &tracks); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(tracks) != 2 || tracks[0].PrimarySource != models.SourceSpotify || len(tracks[0].Sources) != 3 {
		t.Errorf("unexpected tracks: %+v", tracks)
	}
}

func TestResolveCommandMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := runCLI(t, "resolve", "testdata/nope.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSequenceCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"default seed", []string{"--count", "3"}, []string{"a", "b", "d", "c"}},
		{"explicit seed", []string{"--seed", "d", "--count", "1"}, []string{"d", "b"}},
		{"skip", []string{"--skip", "b", "--count", "2"}, []string{"a", "d", "c"}},
		{"zero count", []string{"--count", "0"}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"--json", "sequence", "testdata/pool.json"}, tt.args...)
			out, err := runCLI(t, args...)
			if err != nil {
				t.Fatalf("sequence: %v", err)
			}

			var queue []models.CanonicalTrack
			if err := json.Unmarshal([]byte(out), &queue); err != nil {
				t.Fatalf("decode output: %v\n%s", err, out)
			}
			got := make([]string, len(queue))
			for i := range queue {
				got[i] = queue[i].ID
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("queue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSequenceCommandTable(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "sequence", "testdata/pool.json", "--count", "1")
	if err != nil {
		t.Fatalf("sequence: %v", err)
	}
	for _, want := range []string{"seed", "Opening", "Close Tempo", "122", "8A"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSequenceCommandErrors(t *testing.T) {
	t.Parallel()

	if _, err := runCLI(t, "sequence", "testdata/pool.json", "--seed", "zzz"); err == nil || !strings.Contains(err.Error(), "not in the pool") {
		t.Errorf("unknown seed error = %v", err)
	}
	if _, err := runCLI(t, "sequence", "testdata/pool.json", "--count", "-1"); err == nil {
		t.Error("expected error for negative count")
	}
}

func TestCamelotCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b     string
		distance int
		score    float64
	}{
		{"8A", "8a", 0, 1},
		{"8A", "9A", 1, 0.8},
		{"8A", "8B", 1, 0.8},
		{"1A", "12A", 1, 0.8},
		{"8A", "11A", 3, -0.6},
		{"8A", "3B", 10, -2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"-"+tt.b, func(t *testing.T) {
			t.Parallel()

			out, err := runCLI(t, "--json", "camelot", tt.a, tt.b)
			if err != nil {
				t.Fatalf("camelot: %v", err)
			}
			var result camelotResult
			if err := json.Unmarshal([]byte(out), &result); err != nil {
				t.Fatalf("decode output: %v", err)
			}
			if result.Distance != tt.distance {
				t.Errorf("distance = %d, want %d", result.Distance, tt.distance)
			}
			if diff := result.Score - tt.score; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("score = %f, want %f", result.Score, tt.score)
			}
		})
	}
}

func TestCamelotCommandInvalidKey(t *testing.T) {
	t.Parallel()

	if _, err := runCLI(t, "camelot", "13A", "8A"); err == nil {
		t.Error("expected error for invalid key")
	}
	if _, err := runCLI(t, "camelot", "8A"); err == nil {
		t.Error("expected error for missing argument")
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{0: "-", 59.6: "1:00", 248: "4:08", 3605: "60:05"}
	for in, want := range tests {
		if got := formatDuration(in); got != want {
			t.Errorf("formatDuration(%v) = %q, want %q", in, got, want)
		}
	}
}
