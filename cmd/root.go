// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the ptladmin CLI.
// It implements subcommands for authentication, session management, intern
// record administration and access-log reporting using the Cobra CLI
// framework, with a terminal UI built on pterm.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ptladmin/cli/internal/backend"
	"ptladmin/cli/internal/config"
	"ptladmin/cli/internal/logging"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "ptladmin",
	Short:         "PTL admin CLI for session, intern and access-log management",
	Long:          `ptladmin is a command-line tool for administering the PTL backend: it authenticates against the REST API, keeps the session token renewed in the background, and manages intern records and access-log reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			ctx := context.Background()
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			backendVersion, err := backend.New(cfg.APIURL).Version(ctx)
			if err != nil {
				backendVersion = "unknown"
			}

			fmt.Printf("ptladmin %s\nbackend %s\n", Version, backendVersion)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI and backend version information")
}
