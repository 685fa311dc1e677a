// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mail delivers the rendered digest over SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/pdiddy/job-digest/pkg/types"
)

// Sender delivers one HTML message. Tests substitute deterministic
// fakes; the single real implementation speaks SMTP.
type Sender interface {
	Send(ctx context.Context, subject, htmlBody string) error
}

// SMTPSender sends the digest to the configured recipient over SMTP with
// password authentication. Port 587 upgrades the session with STARTTLS
// before authenticating; other ports use opportunistic TLS.
type SMTPSender struct {
	cfg types.MailConfig
}

// NewSMTPSender returns a sender for the given mail configuration.
func NewSMTPSender(cfg types.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send builds the message and runs a full dial/auth/send/quit session.
// The connection is closed regardless of outcome. Any failure is fatal
// to the run and propagates to the caller.
func (s *SMTPSender) Send(ctx context.Context, subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.Sender); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", s.cfg.Sender, err)
	}
	if err := msg.To(s.cfg.Recipient); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", s.cfg.Recipient, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithTimeout(s.cfg.Timeout),
		gomail.WithTLSPolicy(tlsPolicy(s.cfg.Port)),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("configuring SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("SMTP session with %s:%d: %w", s.cfg.Host, s.cfg.Port, err)
	}
	return nil
}

// tlsPolicy selects the STARTTLS behavior for the configured port. 587
// is the submission port; there the upgrade is mandatory.
func tlsPolicy(port int) gomail.TLSPolicy {
	if port == 587 {
		return gomail.TLSMandatory
	}
	return gomail.TLSOpportunistic
}
