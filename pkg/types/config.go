package types

import (
	"fmt"
	"time"
)

// SearchConfig holds settings for the Google Custom Search client.
type SearchConfig struct {
	// APIKey is the Google Custom Search JSON API key (GCSE_API_KEY).
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// EngineID is the programmable search engine identifier (GCSE_CX).
	EngineID string `json:"engine_id,omitempty" yaml:"engine_id,omitempty"`

	// Timeout is the HTTP request timeout for one search call (default 20s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// MailConfig holds settings for SMTP delivery of the report.
type MailConfig struct {
	// Host is the SMTP server hostname (default smtp.gmail.com).
	Host string `json:"host" yaml:"host"`

	// Port is the SMTP server port (default 587). Port 587 triggers a
	// mandatory STARTTLS upgrade before authentication.
	Port int `json:"port" yaml:"port"`

	// Username authenticates the SMTP session. Defaults to Sender.
	Username string `json:"username" yaml:"username"`

	// Password authenticates the SMTP session (SMTP_PASS).
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	// Sender is the From address.
	Sender string `json:"sender" yaml:"sender"`

	// Recipient is the single To address the digest is delivered to.
	Recipient string `json:"recipient" yaml:"recipient"`

	// Timeout bounds the whole SMTP session (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DigestConfig holds settings for query building and result aggregation.
type DigestConfig struct {
	// MaxPerRole caps the number of results kept for one role (default 8).
	MaxPerRole int `json:"max_per_role" yaml:"max_per_role"`

	// QueryDelay is the pause between consecutive queries for the same
	// role (default 400ms). A courtesy to the search API, not a rate
	// guarantee.
	QueryDelay time.Duration `json:"query_delay" yaml:"query_delay"`

	// Startups lists preferred employers (TOP_STARTUPS). Entries
	// containing a "." are treated as domains and produce site:
	// restricted queries; bare names produce quoted-phrase queries.
	Startups []string `json:"startups,omitempty" yaml:"startups,omitempty"`
}

// Config groups all settings for one digest run. Populated once at
// startup and never mutated afterwards.
type Config struct {
	Search SearchConfig `json:"search" yaml:"search"`
	Mail   MailConfig   `json:"mail" yaml:"mail"`
	Digest DigestConfig `json:"digest" yaml:"digest"`
}

// Validate checks that the required settings are present. It reports the
// missing category rather than enumerating every field, and must pass
// before any network call is made.
func (c *Config) Validate() error {
	if err := c.ValidateSearch(); err != nil {
		return err
	}
	if c.Mail.Sender == "" || c.Mail.Recipient == "" || c.Mail.Password == "" {
		return fmt.Errorf("email configuration missing: set SENDER_EMAIL, RECIPIENT_EMAIL and SMTP_PASS")
	}
	return nil
}

// ValidateSearch checks only the search half of the configuration, for
// commands that query the API without sending mail.
func (c *Config) ValidateSearch() error {
	if c.Search.APIKey == "" || c.Search.EngineID == "" {
		return fmt.Errorf("search API configuration missing: set GCSE_API_KEY and GCSE_CX")
	}
	return nil
}
