// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cadence/internal/features"
	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/sequencer"
)

type sequenceOptions struct {
	seed              string
	count             int
	skip              []string
	diversityInterval int
	artistWindow      int
}

func newSequenceCommand(root *rootOptions) *cobra.Command {
	opts := &sequenceOptions{}

	cmd := &cobra.Command{
		Use:   "sequence <pool.json>",
		Short: "Print the queue the sequencer builds from a seed track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pool []models.CanonicalTrack
			if err := readJSONFile(cmd, args[0], &pool); err != nil {
				return err
			}

			queue, err := runSequence(pool, opts)
			if err != nil {
				return err
			}

			if root.json {
				return writeJSON(cmd, queue)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderQueue(queue))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.seed, "seed", "", "Seed track id (default: first track in the pool)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 10, "Number of tracks to pick after the seed")
	cmd.Flags().StringSliceVar(&opts.skip, "skip", nil, "Track ids to mark as skipped before sequencing")
	cmd.Flags().IntVar(&opts.diversityInterval, "diversity-interval", sequencer.DefaultDiversityInterval, "Every Nth pick favors an energy change")
	cmd.Flags().IntVar(&opts.artistWindow, "artist-window", sequencer.DefaultArtistWindow, "Recent picks checked for artist repeats")

	return cmd
}

// runSequence returns the seed followed by up to count picks.
func runSequence(pool []models.CanonicalTrack, opts *sequenceOptions) ([]models.CanonicalTrack, error) {
	if len(pool) == 0 {
		return nil, errors.New("pool is empty")
	}
	if opts.count < 0 {
		return nil, errors.New("count must not be negative")
	}

	seedID := opts.seed
	if seedID == "" {
		seedID = pool[0].ID
	}
	var seed *models.CanonicalTrack
	for i := range pool {
		if pool[i].ID == seedID {
			seed = &pool[i]
			break
		}
	}
	if seed == nil {
		return nil, fmt.Errorf("seed %q is not in the pool", seedID)
	}

	seq := sequencer.New(sequencer.Options{
		DiversityInterval: opts.diversityInterval,
		ArtistWindow:      opts.artistWindow,
	}, logging.Logger())
	seq.Init(*seed, pool)
	for _, id := range opts.skip {
		seq.HandleSkip(id)
	}

	queue := make([]models.CanonicalTrack, 0, opts.count+1)
	queue = append(queue, features.Enrich(*seed))
	for len(queue) <= opts.count {
		next, ok := seq.GetNextTrack()
		if !ok {
			break
		}
		queue = append(queue, next)
	}
	return queue, nil
}

func renderQueue(queue []models.CanonicalTrack) string {
	rows := make([][]string, 0, len(queue))
	for i := range queue {
		t := &queue[i]
		tempo, key, energy := "-", "-", "-"
		if f := t.Features; f != nil {
			tempo = strconv.FormatFloat(f.Tempo, 'f', 0, 64)
			key = f.Key
			energy = strconv.FormatFloat(f.Energy, 'f', 2, 64)
		}
		position := strconv.Itoa(i)
		if i == 0 {
			position = "seed"
		}
		rows = append(rows, []string{position, t.ID, t.Title, t.Artist, tempo, key, energy})
	}
	return renderTable(
		[]string{"#", "ID", "Title", "Artist", "BPM", "Key", "Energy"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignRight},
	)
}
