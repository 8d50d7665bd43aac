// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cadence/internal/features"
	"github.com/tomtom215/cadence/internal/sequencer"
)

type camelotResult struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance int     `json:"distance"`
	Score    float64 `json:"score"`
}

func newCamelotCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "camelot <keyA> <keyB>",
		Short: "Show the harmonic distance between two Camelot keys",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := features.ParseKey(args[0])
			if err != nil {
				return err
			}
			b, err := features.ParseKey(args[1])
			if err != nil {
				return err
			}

			result := camelotResult{
				From:     a.String(),
				To:       b.String(),
				Distance: a.Distance(b),
				Score:    sequencer.KeyScore(a.String(), b.String()),
			}
			if opts.json {
				return writeJSON(cmd, result)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"From", "To", "Distance", "Key Score"},
				[][]string{{
					result.From,
					result.To,
					strconv.Itoa(result.Distance),
					strconv.FormatFloat(result.Score, 'f', 2, 64),
				}},
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}
}
