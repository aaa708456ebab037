package search

import (
	"net/url"
	"strconv"
	"strings"
)

// Params describes one search invocation. Terms are AND-combined into a
// single query string; Sites restricts results to profile hosts.
type Params struct {
	Terms []string `yaml:"terms"`
	Sites []string `yaml:"sites"`
	// Pages limits how many result pages are fetched. 0 means as many as
	// the API allows.
	Pages int `yaml:"pages"`
	// Language hint passed through to the API (lr parameter), e.g. lang_sv.
	Language string `yaml:"language" mapstructure:"language"`
}

// Query renders the AND-combined query string with site restrictions.
func (p *Params) Query() string {
	var parts []string
	for _, term := range p.Terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if strings.ContainsRune(term, ' ') {
			term = `"` + term + `"`
		}
		parts = append(parts, term)
	}

	sites := make([]string, 0, len(p.Sites))
	for _, site := range p.Sites {
		site = strings.TrimSpace(site)
		if site != "" {
			sites = append(sites, "site:"+site)
		}
	}
	if len(sites) > 0 {
		parts = append(parts, strings.Join(sites, " OR "))
	}

	return strings.Join(parts, " ")
}

func (c *Client) buildParams(params *Params, start int) url.Values {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("cx", c.engineID)
	q.Set("q", params.Query())
	q.Set("num", strconv.Itoa(perPage))
	if start > 1 {
		q.Set("start", strconv.Itoa(start))
	}
	if params.Language != "" {
		q.Set("lr", params.Language)
	}
	return q
}
