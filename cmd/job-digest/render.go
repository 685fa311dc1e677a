// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/job-digest/internal/digest"
	"github.com/pdiddy/job-digest/internal/report"
	"github.com/pdiddy/job-digest/internal/search"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Run the search pipeline and print the HTML report",
	Long: `Render performs the search and aggregation passes and writes the HTML
report to stdout instead of sending it. Only the search API
configuration is required; warnings go to stderr.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().Duration("timeout", 0, "search request timeout (default 20s)")
	renderCmd.Flags().Duration("delay", 0, "pause between queries for the same role (default 400ms)")
	renderCmd.Flags().Int("max-per-role", 0, "maximum results kept per role (default 8)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadPipelineConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.ValidateSearch(); err != nil {
		return err
	}

	client := &search.GoogleCSE{
		Client:   &http.Client{Timeout: cfg.Search.Timeout},
		APIKey:   cfg.Search.APIKey,
		EngineID: cfg.Search.EngineID,
	}

	sections := digest.Collect(cmd.Context(), client, digest.Roles, cfg.Digest, os.Stderr)
	body, err := report.Render(sections, time.Now())
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	fmt.Fprintln(os.Stdout, body)
	return nil
}
