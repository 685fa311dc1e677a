// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/job-digest/internal/mail"
	"github.com/pdiddy/job-digest/internal/report"
	"github.com/pdiddy/job-digest/internal/search"
	"github.com/pdiddy/job-digest/pkg/types"
)

// Run executes one digest pass: validate configuration, aggregate
// results for the fixed roles, render the report, and send it. Query
// failures degrade to empty sections; configuration and mail failures
// abort the run. No network call happens before validation passes.
func Run(ctx context.Context, cfg *types.Config, client search.Client, sender mail.Sender, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	now := time.Now()
	sections := Collect(ctx, client, Roles, cfg.Digest, w)

	body, err := report.Render(sections, now)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	subject := "Daily job digest — " + now.Format("2006-01-02")
	if err := sender.Send(ctx, subject, body); err != nil {
		return fmt.Errorf("sending digest: %w", err)
	}

	fmt.Fprintf(w, "Sent email to %s\n", cfg.Mail.Recipient)
	return nil
}
