// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves the digest configuration from the environment,
// an optional YAML file, and the .secrets/ fallback directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/job-digest/internal/secrets"
	"github.com/pdiddy/job-digest/pkg/types"
)

// Defaults applied when neither the environment nor a config file sets a
// value.
const (
	defaultSMTPHost      = "smtp.gmail.com"
	defaultSMTPPort      = 587
	defaultSearchTimeout = 20 * time.Second
	defaultMailTimeout   = 30 * time.Second
	defaultMaxPerRole    = 8
	defaultQueryDelay    = 400 * time.Millisecond
)

// envBindings maps config keys to the environment variables that set
// them. The names predate this tool and stay as-is so existing cron
// environments keep working.
var envBindings = map[string]string{
	"search.api_key":   "GCSE_API_KEY",
	"search.engine_id": "GCSE_CX",
	"mail.recipient":   "RECIPIENT_EMAIL",
	"mail.sender":      "SENDER_EMAIL",
	"mail.host":        "SMTP_HOST",
	"mail.port":        "SMTP_PORT",
	"mail.username":    "SMTP_USER",
	"mail.password":    "SMTP_PASS",
	"digest.startups":  "TOP_STARTUPS",
}

// Load resolves the full configuration. Precedence per key: environment
// variable, then config file, then secrets store (credentials only),
// then built-in default. Load does not validate; callers run
// (*types.Config).Validate before any network activity.
func Load(cfgFile string, store secrets.Store) (*types.Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("job-digest")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "job-digest"))
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	v.SetDefault("mail.host", defaultSMTPHost)
	v.SetDefault("mail.port", defaultSMTPPort)
	v.SetDefault("mail.timeout", defaultMailTimeout)
	v.SetDefault("search.timeout", defaultSearchTimeout)
	v.SetDefault("digest.max_per_role", defaultMaxPerRole)
	v.SetDefault("digest.query_delay", defaultQueryDelay)

	if err := v.ReadInConfig(); err != nil {
		// An explicitly named file must exist; a missing file on the
		// default search path is fine.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &types.Config{
		Search: types.SearchConfig{
			APIKey:   orSecret(v.GetString("search.api_key"), store, "gcse-api-key"),
			EngineID: orSecret(v.GetString("search.engine_id"), store, "gcse-cx"),
			Timeout:  v.GetDuration("search.timeout"),
		},
		Mail: types.MailConfig{
			Host:      v.GetString("mail.host"),
			Port:      v.GetInt("mail.port"),
			Username:  v.GetString("mail.username"),
			Password:  orSecret(v.GetString("mail.password"), store, "smtp-pass"),
			Sender:    v.GetString("mail.sender"),
			Recipient: v.GetString("mail.recipient"),
			Timeout:   v.GetDuration("mail.timeout"),
		},
		Digest: types.DigestConfig{
			MaxPerRole: v.GetInt("digest.max_per_role"),
			QueryDelay: v.GetDuration("digest.query_delay"),
			Startups:   SplitList(v.GetString("digest.startups")),
		},
	}

	if cfg.Mail.Username == "" {
		cfg.Mail.Username = cfg.Mail.Sender
	}

	return cfg, nil
}

// orSecret returns value, or the named secret when value is empty.
func orSecret(value string, store secrets.Store, key string) string {
	if value != "" {
		return value
	}
	return store.Get(key)
}

// SplitList parses a comma-separated list into trimmed, non-empty
// entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
