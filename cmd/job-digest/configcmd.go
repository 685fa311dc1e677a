// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/job-digest/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration as YAML",
	Long: `Config resolves the effective configuration (environment, config file,
secrets fallback, defaults) and prints it as YAML. The SMTP password is
redacted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(loadConfigFlag(cmd), loadedSecrets)
		if err != nil {
			return err
		}

		if cfg.Mail.Password != "" {
			cfg.Mail.Password = "<redacted>"
		}

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling configuration: %w", err)
		}
		fmt.Fprint(os.Stdout, string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
