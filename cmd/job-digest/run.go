// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/job-digest/internal/config"
	"github.com/pdiddy/job-digest/internal/digest"
	"github.com/pdiddy/job-digest/internal/mail"
	"github.com/pdiddy/job-digest/internal/search"
	"github.com/pdiddy/job-digest/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the search pipeline and email the report",
	Long: `Run performs one digest pass: it queries the search API for every role,
deduplicates and caps the results, renders the HTML report, and sends it
to the configured recipient. Missing required configuration aborts
before any network call; a failed email delivery aborts the run.`,
	RunE: runDigest,
}

func init() {
	runCmd.Flags().Duration("timeout", 0, "search request timeout (default 20s)")
	runCmd.Flags().Duration("delay", 0, "pause between queries for the same role (default 400ms)")
	runCmd.Flags().Int("max-per-role", 0, "maximum results kept per role (default 8)")

	rootCmd.AddCommand(runCmd)
}

func runDigest(cmd *cobra.Command, args []string) error {
	cfg, err := loadPipelineConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := &search.GoogleCSE{
		Client:   &http.Client{Timeout: cfg.Search.Timeout},
		APIKey:   cfg.Search.APIKey,
		EngineID: cfg.Search.EngineID,
	}
	sender := mail.NewSMTPSender(cfg.Mail)

	return digest.Run(cmd.Context(), cfg, client, sender, os.Stdout)
}

// loadPipelineConfig resolves configuration and applies the shared
// pipeline flag overrides.
func loadPipelineConfig(cmd *cobra.Command) (*types.Config, error) {
	cfg, err := config.Load(loadConfigFlag(cmd), loadedSecrets)
	if err != nil {
		return nil, err
	}

	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		cfg.Search.Timeout = timeout
	}
	if delay, err := cmd.Flags().GetDuration("delay"); err == nil && cmd.Flags().Changed("delay") {
		cfg.Digest.QueryDelay = delay
	}
	if maxPerRole, _ := cmd.Flags().GetInt("max-per-role"); maxPerRole > 0 {
		cfg.Digest.MaxPerRole = maxPerRole
	}
	return cfg, nil
}
