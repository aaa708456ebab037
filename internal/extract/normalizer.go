// Package extract turns raw search result items into candidate profiles
// through priority-ordered heuristic strategy chains.
package extract

import (
	"net/url"
	"strings"
)

// Query parameters stripped during URL canonicalization.
var trackingParams = map[string]struct{}{
	"utm_source":        {},
	"utm_medium":        {},
	"utm_campaign":      {},
	"utm_term":          {},
	"utm_content":       {},
	"trk":               {},
	"trkinfo":           {},
	"ref":               {},
	"refid":             {},
	"fbclid":            {},
	"gclid":             {},
	"originalsubdomain": {},
	"original_referer":  {},
}

// Site brands stripped from result titles, lowercase.
var siteBrands = map[string]struct{}{
	"linkedin":          {},
	"linkedin sverige":  {},
	"xing":              {},
	"indeed":            {},
	"indeed.com":        {},
	"github":            {},
	"twitter":           {},
	"x":                 {},
	"facebook":          {},
	"professional profile": {},
}

var titleSeparators = []string{" | ", " - ", " – ", " — "}

// NormalizeURL canonicalizes a profile URL: tracking query parameters are
// stripped, locale subdomains collapse to www, the trailing slash goes
// away. Total and idempotent; unparseable input is returned trimmed.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		return strings.TrimRight(trimmed, "/")
	}

	if u.Scheme == "http" {
		u.Scheme = "https"
	}

	host := strings.ToLower(u.Host)
	if collapsed, ok := collapseLocaleHost(host); ok {
		host = collapsed
	}
	u.Host = host

	q := u.Query()
	for key := range q {
		if _, tracking := trackingParams[strings.ToLower(key)]; tracking {
			q.Del(key)
		}
	}
	u.RawQuery = q.Encode()
	u.Fragment = ""
	u.Path = strings.TrimRight(u.Path, "/")

	return u.String()
}

// collapseLocaleHost maps locale subdomains such as se.linkedin.com to the
// canonical www host. Only short locale labels collapse; subdomains like
// business.linkedin.com name a different site and stay untouched.
func collapseLocaleHost(host string) (string, bool) {
	label, rest, ok := strings.Cut(host, ".")
	if !ok {
		return host, false
	}
	if label == "www" {
		return host, false
	}
	if len(label) > 3 {
		return host, false
	}
	if strings.Count(rest, ".") < 1 {
		return host, false
	}
	return "www." + rest, true
}

// StripSiteSuffix removes trailing site-brand tokens from a result title,
// e.g. "Anna Karlsson | LinkedIn" becomes "Anna Karlsson". Unknown
// suffixes are kept.
func StripSiteSuffix(title string) string {
	out := strings.TrimSpace(title)
	for {
		idx, sep := lastSeparator(out)
		if idx < 0 {
			return out
		}
		tail := strings.ToLower(strings.TrimSpace(out[idx+len(sep):]))
		if _, brand := siteBrands[tail]; !brand {
			return out
		}
		out = strings.TrimSpace(out[:idx])
	}
}

func lastSeparator(s string) (int, string) {
	best := -1
	bestSep := ""
	for _, sep := range titleSeparators {
		if idx := strings.LastIndex(s, sep); idx > best {
			best = idx
			bestSep = sep
		}
	}
	return best, bestSep
}

// splitOnSeparators splits text on the common profile-title separators and
// trims each part.
func splitOnSeparators(text string) []string {
	parts := []string{text}
	for _, sep := range titleSeparators {
		var next []string
		for _, part := range parts {
			next = append(next, strings.Split(part, sep)...)
		}
		parts = next
	}

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
