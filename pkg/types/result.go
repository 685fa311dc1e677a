// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the job-digest pipeline.
package types

// ResultItem represents one search hit returned by the search API.
// Immutable once parsed from a response.
type ResultItem struct {
	// Title is the result title as returned by the API. May be empty.
	Title string `json:"title" yaml:"title"`

	// Link is the result URL. When present it is the dedup key.
	Link string `json:"link" yaml:"link"`

	// Snippet is the result excerpt. Empty when the API omits it.
	Snippet string `json:"snippet" yaml:"snippet"`
}

// DedupKey returns the string used to decide whether two results are the
// same posting: the link when present, otherwise title+snippet. The
// fallback is deliberately weak; it mirrors how hits without URLs have
// always been folded together.
func (r ResultItem) DedupKey() string {
	if r.Link != "" {
		return r.Link
	}
	return r.Title + r.Snippet
}

// DisplayTitle returns the text to render for the item: the title, or
// the link when the title is empty.
func (r ResultItem) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Link
}

// RoleSection holds the aggregated results for one role, in first-seen
// order. Sections preserve the fixed role order end to end.
type RoleSection struct {
	// Role is the job-category label the queries were built from.
	Role string `json:"role" yaml:"role"`

	// Items are the deduplicated results, capped at MaxPerRole.
	Items []ResultItem `json:"items" yaml:"items"`
}
