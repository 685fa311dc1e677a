// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/job-digest/internal/config"
	"github.com/pdiddy/job-digest/internal/digest"
)

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "Print the search queries built for each role",
	Long: `Queries prints the exact query strings the pipeline would submit for
every role, honoring TOP_STARTUPS. Useful for checking site: restriction
and phrase quoting without spending API quota.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(loadConfigFlag(cmd), loadedSecrets)
		if err != nil {
			return err
		}

		for _, role := range digest.Roles {
			fmt.Fprintf(os.Stdout, "%s:\n", role)
			for _, q := range digest.BuildQueries(role, cfg.Digest.Startups) {
				fmt.Fprintf(os.Stdout, "  %s\n", q)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queriesCmd)
}
