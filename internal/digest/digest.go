// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/job-digest/internal/search"
	"github.com/pdiddy/job-digest/pkg/types"
)

// Collect runs every role's query sequence against the client and
// returns one section per role, in the given role order. A role whose
// queries all fail or return nothing gets an empty section; per-query
// failures are reported on w and skipped.
func Collect(ctx context.Context, client search.Client, roles []string, cfg types.DigestConfig, w io.Writer) []types.RoleSection {
	sections := make([]types.RoleSection, 0, len(roles))
	for _, role := range roles {
		queries := BuildQueries(role, cfg.Startups)
		items := collectRole(ctx, client, queries, cfg, w)
		sections = append(sections, types.RoleSection{Role: role, Items: items})
	}
	return sections
}

// collectRole folds one role's queries into a deduplicated, capped item
// list. Queries run in order; the first occurrence of a dedup key wins.
// Consecutive queries are paced by QueryDelay; the pause is skipped once
// the cap is reached because the loop exits first.
func collectRole(ctx context.Context, client search.Client, queries []string, cfg types.DigestConfig, w io.Writer) []types.ResultItem {
	limiter := pacer(cfg.QueryDelay)
	seen := make(map[string]bool)
	var collected []types.ResultItem

	for _, q := range queries {
		if len(collected) >= cfg.MaxPerRole {
			break
		}
		if err := limiter.Wait(ctx); err != nil {
			fmt.Fprintf(w, "warning: aggregation stopped: %v\n", err)
			break
		}

		items, err := client.Search(ctx, q, cfg.MaxPerRole)
		if err != nil {
			fmt.Fprintf(w, "warning: query %q failed: %v\n", q, err)
			continue
		}

		for _, it := range items {
			key := it.DedupKey()
			if seen[key] {
				continue
			}
			seen[key] = true
			collected = append(collected, it)
			if len(collected) >= cfg.MaxPerRole {
				break
			}
		}
	}
	return collected
}

// pacer returns a limiter that admits one query per delay, with the
// first query passing immediately. A non-positive delay disables pacing.
func pacer(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}
