// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digest builds role queries, aggregates search results, and
// drives the report pipeline.
package digest

import (
	"fmt"
	"strings"
)

// Roles are the job categories the digest covers. The set is fixed; it
// is not configurable at runtime.
var Roles = []string{
	"Frontend Developer",
	"Backend Developer",
	"MERN Full Stack Developer",
	"Salesforce Developer",
}

// BuildQueries returns the ordered query list for one role. Startup
// queries come first so preferred-employer results win ties when the
// per-role cap truncates aggregation. A startup entry containing "." is
// treated as a domain and restricted with site:; a bare name becomes a
// quoted phrase.
func BuildQueries(role string, startups []string) []string {
	queries := make([]string, 0, len(startups)+3)
	for _, s := range startups {
		if strings.Contains(s, ".") {
			queries = append(queries, fmt.Sprintf("%s site:%s", role, s))
		} else {
			queries = append(queries, fmt.Sprintf("%s %q", role, s))
		}
	}
	queries = append(queries,
		fmt.Sprintf("%s startup hiring", role),
		fmt.Sprintf(`%s "we are hiring"`, role),
		fmt.Sprintf(`%s "hiring now"`, role),
	)
	return queries
}
