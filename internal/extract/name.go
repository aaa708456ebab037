package extract

import (
	"regexp"
	"strings"

	"github.com/jonjonssons/sacore-ai/internal/dictionary"
	"github.com/jonjonssons/sacore-ai/internal/search"
)

// NameExtractor lifts a person name out of a noisy result item.
type NameExtractor struct {
	dict *dictionary.Bundle
	// pick chooses an index into the fallback surname list. Injected so
	// tests can pin the choice.
	pick func(n int) int
}

// NewNameExtractor builds the extractor. pick may be nil outside tests;
// the builder supplies the default.
func NewNameExtractor(dict *dictionary.Bundle, pick func(n int) int) *NameExtractor {
	return &NameExtractor{dict: dict, pick: pick}
}

var capitalizedNamePattern = regexp.MustCompile(`^\s*([\p{Lu}][\p{Ll}]+(?:\s+[\p{Lu}][\p{Ll}]+){1,3})\b`)

// slug segments that are profile ids rather than name parts: pure digits
// or short hex-looking tails like "1a2b3c".
var slugIDPattern = regexp.MustCompile(`^[0-9]+$|^[0-9a-f]{5,}$`)

// Extract returns the best-effort name and the strategy that produced it.
// Empty output means no strategy yielded anything plausible; callers must
// render a positional fallback label instead.
func (e *NameExtractor) Extract(item *search.Result) (string, string) {
	return runChain(item, []strategy{
		{name: "presupplied", fn: func(item *search.Result) string {
			return strings.TrimSpace(item.Name)
		}},
		{name: "title_separator", fn: func(item *search.Result) string {
			return e.fromSeparatorSplit(item.Title)
		}},
		{name: "snippet_separator", fn: func(item *search.Result) string {
			return e.fromSeparatorSplit(item.Snippet)
		}},
		{name: "capitalized_words", fn: func(item *search.Result) string {
			return e.fromCapitalizedStart(item.Snippet)
		}},
		{name: "url_path", fn: func(item *search.Result) string {
			return e.fromURL(item.URL)
		}},
	})
}

// fromSeparatorSplit takes the text before the first separator, provided
// no job-title keyword appears there.
func (e *NameExtractor) fromSeparatorSplit(text string) string {
	parts := splitOnSeparators(StripSiteSuffix(text))
	if len(parts) == 0 {
		return ""
	}
	return e.plausibleName(parts[0])
}

func (e *NameExtractor) fromCapitalizedStart(snippet string) string {
	m := capitalizedNamePattern.FindStringSubmatch(snippet)
	if m == nil {
		return ""
	}
	return e.plausibleName(m[1])
}

// fromURL derives a name from the profile URL's last path segment,
// hyphen-split with each part capitalized. Trailing id segments are
// dropped; a single surviving token gets a surname from the fixed
// fallback list so downstream always sees a two-part name.
func (e *NameExtractor) fromURL(rawURL string) string {
	segment := profileSlug(rawURL)
	if segment == "" {
		return ""
	}

	var words []string
	for _, part := range strings.Split(segment, "-") {
		if part == "" || slugIDPattern.MatchString(part) {
			continue
		}
		words = append(words, capitalize(part))
	}

	if len(words) == 0 {
		return ""
	}
	if len(words) == 1 {
		surnames := e.dict.Surnames()
		if len(surnames) > 0 && e.pick != nil {
			words = append(words, surnames[e.pick(len(surnames))])
		}
	}

	return strings.Join(words, " ")
}

// plausibleName accepts short capitalized word runs without digits or
// job-title keywords.
func (e *NameExtractor) plausibleName(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if strings.ContainsAny(trimmed, "0123456789@/") {
		return ""
	}

	words := strings.Fields(trimmed)
	if len(words) < 2 || len(words) > 4 {
		return ""
	}
	if e.dict.IsLikelyJobTitle(trimmed) {
		return ""
	}
	for _, word := range words {
		if !startsUpper(word) {
			return ""
		}
	}
	return trimmed
}

func profileSlug(rawURL string) string {
	normalized := NormalizeURL(rawURL)
	if normalized == "" {
		return ""
	}
	trimmed := strings.TrimRight(normalized, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 || idx == len(trimmed)-1 {
		return ""
	}
	segment := trimmed[idx+1:]
	if strings.ContainsAny(segment, ".?=&") {
		return ""
	}
	return strings.ToLower(segment)
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func startsUpper(word string) bool {
	for _, r := range word {
		return r >= 'A' && r <= 'Z' || r >= 'À' && r <= 'Þ'
	}
	return false
}
