// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cadence/internal/catalog"
	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/resolve"
)

func newResolveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <records.json>",
		Short: "Normalize and deduplicate raw catalog records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []models.RawRecord
			if err := readJSONFile(cmd, args[0], &records); err != nil {
				return err
			}

			candidates := catalog.NormalizeAll(records)
			tracks := resolve.New(logging.Logger()).Resolve(candidates)

			if opts.json {
				return writeJSON(cmd, tracks)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d records, %d normalized, %d canonical tracks\n", len(records), len(candidates), len(tracks))
			if len(tracks) == 0 {
				return nil
			}
			fmt.Fprintln(out, renderResolved(tracks))
			return nil
		},
	}
}

func renderResolved(tracks []models.CanonicalTrack) string {
	rows := make([][]string, 0, len(tracks))
	for i := range tracks {
		t := &tracks[i]
		alts := make([]string, 0, len(t.Sources))
		for _, s := range t.AlternateSources() {
			alts = append(alts, string(s))
		}
		rows = append(rows, []string{
			t.ID,
			t.Title,
			t.Artist,
			formatDuration(t.Duration),
			string(t.PrimarySource),
			strings.Join(alts, ", "),
		})
	}
	return renderTable(
		[]string{"ID", "Title", "Artist", "Length", "Primary", "Also On"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
	)
}
