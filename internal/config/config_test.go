// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/job-digest/internal/secrets"
)

// clearEnv unsets every bound variable so ambient values cannot leak
// into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
		require.NoError(t, os.Unsetenv(env))
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("GCSE_API_KEY", "AIzaTest")
	t.Setenv("GCSE_CX", "cx-123")
	t.Setenv("RECIPIENT_EMAIL", "you@example.com")
	t.Setenv("SENDER_EMAIL", "me@example.com")
	t.Setenv("SMTP_PASS", "app-pass")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "AIzaTest", cfg.Search.APIKey)
	assert.Equal(t, "cx-123", cfg.Search.EngineID)
	assert.Equal(t, "you@example.com", cfg.Mail.Recipient)
	assert.Equal(t, "me@example.com", cfg.Mail.Sender)
	assert.Equal(t, "app-pass", cfg.Mail.Password)

	// Defaults.
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, 30*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, 20*time.Second, cfg.Search.Timeout)
	assert.Equal(t, 8, cfg.Digest.MaxPerRole)
	assert.Equal(t, 400*time.Millisecond, cfg.Digest.QueryDelay)
	assert.Empty(t, cfg.Digest.Startups)

	// SMTP username defaults to the sender.
	assert.Equal(t, "me@example.com", cfg.Mail.Username)

	assert.NoError(t, cfg.Validate())
}

func TestLoadExplicitSMTPSettings(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMTP_HOST", "mail.example.net")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "relay-user")
	t.Setenv("SENDER_EMAIL", "me@example.com")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "mail.example.net", cfg.Mail.Host)
	assert.Equal(t, 2525, cfg.Mail.Port)
	assert.Equal(t, "relay-user", cfg.Mail.Username)
}

func TestLoadParsesStartups(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want []string
	}{
		{"empty", "", nil},
		{"single domain", "stripe.com", []string{"stripe.com"}},
		{"trims and drops empties", " stripe.com , ,notion.so,  Acme ", []string{"stripe.com", "notion.so", "Acme"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if tt.env != "" {
				t.Setenv("TOP_STARTUPS", tt.env)
			}
			cfg, err := Load("", nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Digest.Startups)
		})
	}
}

func TestLoadSecretsFallback(t *testing.T) {
	clearEnv(t)
	store := secrets.Store{
		"gcse-api-key": "from-secrets",
		"gcse-cx":      "cx-secret",
		"smtp-pass":    "pass-secret",
	}

	cfg, err := Load("", store)
	require.NoError(t, err)
	assert.Equal(t, "from-secrets", cfg.Search.APIKey)
	assert.Equal(t, "cx-secret", cfg.Search.EngineID)
	assert.Equal(t, "pass-secret", cfg.Mail.Password)
}

func TestLoadEnvironmentWinsOverSecrets(t *testing.T) {
	clearEnv(t)
	t.Setenv("GCSE_API_KEY", "from-env")

	cfg, err := Load("", secrets.Store{"gcse-api-key": "from-secrets"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Search.APIKey)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "job-digest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
search:
  api_key: file-key
  engine_id: file-cx
mail:
  recipient: file@example.com
digest:
  max_per_role: 5
  startups: "stripe.com,notion.so"
`), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.Search.APIKey)
	assert.Equal(t, "file-cx", cfg.Search.EngineID)
	assert.Equal(t, "file@example.com", cfg.Mail.Recipient)
	assert.Equal(t, 5, cfg.Digest.MaxPerRole)
	assert.Equal(t, []string{"stripe.com", "notion.so"}, cfg.Digest.Startups)
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestValidateReportsMissingCategory(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "nothing set",
			env:     nil,
			wantErr: "search API configuration missing",
		},
		{
			name: "search set, email missing",
			env: map[string]string{
				"GCSE_API_KEY": "k",
				"GCSE_CX":      "cx",
			},
			wantErr: "email configuration missing",
		},
		{
			name: "password missing",
			env: map[string]string{
				"GCSE_API_KEY":    "k",
				"GCSE_CX":         "cx",
				"SENDER_EMAIL":    "me@example.com",
				"RECIPIENT_EMAIL": "you@example.com",
			},
			wantErr: "email configuration missing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load("", nil)
			require.NoError(t, err)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , ,"))
	assert.Equal(t, []string{"a", "b"}, SplitList("a,b"))
}
