// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/job-digest/pkg/types"
)

type fakeSender struct {
	sends   int
	subject string
	body    string
	err     error
}

func (f *fakeSender) Send(ctx context.Context, subject, htmlBody string) error {
	f.sends++
	f.subject = subject
	f.body = htmlBody
	return f.err
}

func testConfig() *types.Config {
	return &types.Config{
		Search: types.SearchConfig{APIKey: "k", EngineID: "cx", Timeout: 20 * time.Second},
		Mail: types.MailConfig{
			Host: "smtp.gmail.com", Port: 587,
			Username: "me@example.com", Password: "pass",
			Sender: "me@example.com", Recipient: "you@example.com",
			Timeout: 30 * time.Second,
		},
		Digest: types.DigestConfig{MaxPerRole: 8},
	}
}

func TestRunSendsRenderedReport(t *testing.T) {
	client := &fakeClient{responses: map[string][]types.ResultItem{
		"Backend Developer startup hiring": {item(1)},
	}}
	sender := &fakeSender{}

	var out strings.Builder
	if err := Run(context.Background(), testConfig(), client, sender, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if sender.sends != 1 {
		t.Fatalf("sends = %d, want 1", sender.sends)
	}
	if !strings.HasPrefix(sender.subject, "Daily job digest — ") {
		t.Errorf("subject = %q", sender.subject)
	}
	if !strings.Contains(sender.body, "<h3>Backend Developer — 1 results</h3>") {
		t.Errorf("body missing role subheading:\n%s", sender.body)
	}
	if !strings.Contains(out.String(), "Sent email to you@example.com") {
		t.Errorf("out = %q, want confirmation line", out.String())
	}
}

func TestRunMissingSearchConfigIsFatalBeforeAnyCall(t *testing.T) {
	cfg := testConfig()
	cfg.Search.APIKey = ""

	client := &fakeClient{}
	sender := &fakeSender{}

	err := Run(context.Background(), cfg, client, sender, &strings.Builder{})
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if !strings.Contains(err.Error(), "search API configuration missing") {
		t.Errorf("error = %q", err)
	}
	if len(client.calls) != 0 {
		t.Errorf("calls = %v, want none before validation", client.calls)
	}
	if sender.sends != 0 {
		t.Errorf("sends = %d, want 0", sender.sends)
	}
}

func TestRunMissingMailConfigIsFatal(t *testing.T) {
	cfg := testConfig()
	cfg.Mail.Password = ""

	client := &fakeClient{}
	err := Run(context.Background(), cfg, client, &fakeSender{}, &strings.Builder{})
	if err == nil || !strings.Contains(err.Error(), "email configuration missing") {
		t.Fatalf("error = %v, want email configuration error", err)
	}
	if len(client.calls) != 0 {
		t.Errorf("calls = %v, want none", client.calls)
	}
}

func TestRunMailFailureIsFatal(t *testing.T) {
	client := &fakeClient{}
	sender := &fakeSender{err: fmt.Errorf("SMTP session with smtp.gmail.com:587: auth failed")}

	err := Run(context.Background(), testConfig(), client, sender, &strings.Builder{})
	if err == nil || !strings.Contains(err.Error(), "sending digest") {
		t.Fatalf("error = %v, want fatal send error", err)
	}
}
