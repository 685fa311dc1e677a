// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/job-digest/pkg/types"
)

// googleSearchBase is the Custom Search JSON API endpoint. Declared as a
// var so tests can substitute an httptest server.
var googleSearchBase = "https://www.googleapis.com/customsearch/v1"

// maxPageSize is the largest result count a single Custom Search request
// may ask for.
const maxPageSize = 10

// GoogleCSE queries the Google Custom Search JSON API.
type GoogleCSE struct {
	Client   *http.Client
	APIKey   string
	EngineID string
}

// Name returns the backend identifier.
func (g *GoogleCSE) Name() string { return "google_cse" }

// Search runs one query and parses the response items. num is clamped to
// the API's page-size limit of 10.
func (g *GoogleCSE) Search(ctx context.Context, query string, num int) ([]types.ResultItem, error) {
	if query == "" {
		return nil, fmt.Errorf("empty search query")
	}
	if g.APIKey == "" || g.EngineID == "" {
		return nil, fmt.Errorf("search client missing API key or engine ID")
	}

	if num <= 0 || num > maxPageSize {
		num = maxPageSize
	}

	params := url.Values{
		"key": {g.APIKey},
		"cx":  {g.EngineID},
		"q":   {query},
		"num": {strconv.Itoa(num)},
	}
	reqURL := googleSearchBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned HTTP %d", resp.StatusCode)
	}

	var gr googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	items := make([]types.ResultItem, 0, len(gr.Items))
	for _, it := range gr.Items {
		items = append(items, types.ResultItem{
			Title:   it.Title,
			Link:    it.Link,
			Snippet: it.Snippet,
		})
	}
	return items, nil
}

// Custom Search API JSON structures.
type googleResponse struct {
	Items []googleItem `json:"items"`
}

type googleItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}
