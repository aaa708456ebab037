package search

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	contentType     = "application/json"
	contentEncoding = "gzip, deflate, br"
)

// itemResponse mirrors the pieces of the API response we consume.
type itemResponse struct {
	Items  []map[string]any `json:"items"`
	Queries struct {
		NextPage []struct {
			StartIndex int `json:"startIndex"`
		} `json:"nextPage"`
	} `json:"queries"`
	SearchInformation struct {
		TotalResults string `json:"totalResults"`
	} `json:"searchInformation"`
}

// rawItem is the loosely typed shape of one API hit before it becomes a
// Result. Unknown keys are dropped by the decoder.
type rawItem struct {
	Title   string `mapstructure:"title"`
	Snippet string `mapstructure:"snippet"`
	Link    string `mapstructure:"link"`
	Pagemap struct {
		Metatags []map[string]string `mapstructure:"metatags"`
	} `mapstructure:"pagemap"`
}

func (c *Client) search(params *Params) (*Results, error) {
	results := &Results{}

	start := 1
	page := 0
	for {
		response, err := c.getPage(params, start)
		if err != nil {
			return nil, err
		}

		items, err := decodeItems(response.Items)
		if err != nil {
			return nil, err
		}
		results.Items = append(results.Items, items...)

		page++
		if params.Pages > 0 && page >= params.Pages {
			break
		}
		if len(response.Queries.NextPage) == 0 {
			break
		}
		next := response.Queries.NextPage[0].StartIndex
		if next <= start || next > maxStart {
			break
		}

		c.logger.Debug("additional request needed", zap.Int("next_start", next),
			zap.String("total_results", response.SearchInformation.TotalResults),
		)
		start = next
	}

	dropped := results.Dedupe()
	if dropped > 0 {
		c.logger.Debug("dropped duplicated results", zap.Int("count", dropped))
	}

	return results, nil
}

func (c *Client) getPage(params *Params, start int) (*itemResponse, error) {
	apiURLSearch := fmt.Sprintf("%s%s", c.APIURL, searchPath)

	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, apiURLSearch, nil)
	if err != nil {
		return nil, err
	}

	req = c.setHeaders(req)
	req.URL.RawQuery = c.buildParams(params, start).Encode()

	resp, err := c.request(req)
	if err != nil {
		return nil, err
	}

	return parseItemResponse(resp)
}

func decodeItems(raw []map[string]any) ([]*Result, error) {
	items := make([]*Result, 0, len(raw))
	for _, entry := range raw {
		var item rawItem

		cfg := &mapstructure.DecoderConfig{
			Result:           &item,
			WeaklyTypedInput: true,
		}
		decoder, err := mapstructure.NewDecoder(cfg)
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(entry); err != nil {
			return nil, fmt.Errorf("decode search item: %w", err)
		}

		items = append(items, &Result{
			Title:   item.Title,
			Snippet: item.Snippet,
			URL:     item.Link,
			Name:    presuppliedName(item.Pagemap.Metatags),
		})
	}
	return items, nil
}

// presuppliedName pulls a profile name out of provider metadata when the
// indexed page exposes one. Absence is normal; the extractors take over.
func presuppliedName(metatags []map[string]string) string {
	for _, tags := range metatags {
		first := tags["profile:first_name"]
		last := tags["profile:last_name"]
		if first != "" && last != "" {
			return first + " " + last
		}
		if first != "" {
			return first
		}
	}
	return ""
}

func parseItemResponse(resp *http.Response) (*itemResponse, error) {
	// The underlying body must be closed even when wrapped, or the
	// connection cannot be reused for the next page.
	defer resp.Body.Close()

	var body io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		body = gz
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var response *itemResponse
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return nil, err
	}

	return response, nil
}

func (c *Client) request(req *http.Request) (*http.Response, error) {
	c.logger.Debug("make request", zap.String("url", redactKey(req.URL)))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	req.Header.Set("Accept", contentType)
	req.Header.Set("Accept-Encoding", contentEncoding)

	return req
}

// redactKey hides the API key in request logs.
func redactKey(u *url.URL) string {
	clone := *u
	q := clone.Query()
	if q.Get("key") != "" {
		q.Set("key", "REDACTED")
	}
	clone.RawQuery = q.Encode()
	return clone.String()
}
