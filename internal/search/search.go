// Package search talks to the Google Programmable Search JSON API and
// hands the rest of the pipeline a single, ordered, deduplicated batch of
// raw result items per invocation.
package search

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	apiURL     = "https://www.googleapis.com/customsearch/v1"
	searchPath = ""
	// The API caps results at 10 per page and 100 overall.
	perPage  = 10
	maxStart = 91
)

// Result is one raw search hit. Any of the three text fields may be empty.
// Name is populated only when the provider exposes profile metadata for
// the hit.
type Result struct {
	Title   string `json:"title,omitempty"`
	Snippet string `json:"snippet,omitempty"`
	URL     string `json:"url,omitempty"`
	Name    string `json:"name,omitempty"`
}

// Results is an ordered batch of raw hits.
type Results struct {
	Items []*Result
}

func (r *Results) Len() int {
	return len(r.Items)
}

// Dedupe removes repeated URLs, keeping the first occurrence. Order of the
// survivors is preserved; downstream counts must reconcile with what the
// user is shown, so dedup happens here, never downstream.
func (r *Results) Dedupe() int {
	seen := make(map[string]struct{}, len(r.Items))
	kept := r.Items[:0]
	dropped := 0
	for _, item := range r.Items {
		if item.URL != "" {
			if _, dup := seen[item.URL]; dup {
				dropped++
				continue
			}
			seen[item.URL] = struct{}{}
		}
		kept = append(kept, item)
	}
	r.Items = kept
	return dropped
}

// Client is a Google Programmable Search API client.
type Client struct {
	// ctx used only for http requests right now
	ctx      context.Context
	apiKey   string
	engineID string
	logger   *zap.Logger

	HTTPClient *http.Client
	APIURL     string
}

// New creates a search client for the given API key and engine id.
func New(ctx context.Context, logger *zap.Logger, apiKey, engineID string) *Client {
	return &Client{
		ctx:      ctx,
		apiKey:   apiKey,
		engineID: engineID,
		APIURL:   apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Search runs the paginated query flow and returns one complete batch.
func (c *Client) Search(params *Params) (*Results, error) {
	return c.search(params)
}
