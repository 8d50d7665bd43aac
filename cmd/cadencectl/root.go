// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tomtom215/cadence/internal/logging"
)

type rootOptions struct {
	envFile string
	verbose bool
	json    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "cadencectl",
		Short:         "Offline tools for Cadence track resolution and sequencing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Environment file to load if present")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Print JSON instead of a table")

	rootCmd.AddCommand(newResolveCommand(opts))
	rootCmd.AddCommand(newSequenceCommand(opts))
	rootCmd.AddCommand(newCamelotCommand(opts))

	return rootCmd
}

func (o *rootOptions) setup() error {
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", o.envFile, err)
		}
	}

	level := "warn"
	if o.verbose {
		level = "debug"
	}
	logging.Init(logging.Config{Level: level, Format: "console"})
	return nil
}
