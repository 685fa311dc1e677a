// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the web search API and returns normalized result items.
package search

import (
	"context"

	"github.com/pdiddy/job-digest/pkg/types"
)

// Client searches one external API. The single implementation is the
// Google Custom Search backend; tests substitute deterministic fakes.
type Client interface {
	Name() string

	// Search runs one query and returns up to num results. Any failure
	// (transport, non-2xx status, malformed body) is a per-query error;
	// callers are expected to log and move on.
	Search(ctx context.Context, query string, num int) ([]types.ResultItem, error)
}
