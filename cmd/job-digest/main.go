// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the job-digest CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/job-digest/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
// Environment variables take precedence over these.
var loadedSecrets secrets.Store

// rootCmd is the base command for the job-digest CLI.
var rootCmd = &cobra.Command{
	Use:   "job-digest",
	Short: "Daily job search digest delivered by email",
	Long: `job-digest runs a one-shot job search across a fixed set of roles using
the Google Custom Search JSON API, deduplicates and caps the results per
role, renders them into an HTML report, and emails the report over SMTP.

Typical use is a daily cron invocation of "job-digest run". The render
and queries subcommands exercise the pipeline without sending mail.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./job-digest.yaml or ~/.config/job-digest/config.yaml)")
}

// loadConfigFlag returns the --config value for internal/config.Load.
func loadConfigFlag(cmd *cobra.Command) string {
	cfgFile, _ := cmd.Flags().GetString("config")
	return cfgFile
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
