package extract

import (
	"regexp"
	"strings"

	"github.com/jonjonssons/sacore-ai/internal/dictionary"
	"github.com/jonjonssons/sacore-ai/internal/search"
)

// LocationExtractor lifts a place of residence/work out of a result item.
// Unlike the other extractors it never guesses: a candidate that fails the
// dictionary check is dropped, because a false location is worse than a
// missing one.
type LocationExtractor struct {
	dict *dictionary.Bundle
}

func NewLocationExtractor(dict *dictionary.Bundle) *LocationExtractor {
	return &LocationExtractor{dict: dict}
}

// "City, Country" pairs.
var cityCountryPattern = regexp.MustCompile(`([\p{Lu}][\p{L}]+(?:\s+[\p{Lu}][\p{L}]+)?),\s*([\p{Lu}][\p{L}]+(?:\s+[\p{Lu}][\p{L}]+)?)`)

var tokenPattern = regexp.MustCompile(`[\p{Lu}][\p{L}]+(?:\s+[\p{Lu}][\p{L}]+)?`)

// Extract returns the standardized location and the producing strategy,
// or empty strings when nothing validates against the dictionaries.
func (e *LocationExtractor) Extract(item *search.Result) (string, string) {
	return runChain(item, []strategy{
		{name: "comma_pattern", fn: e.fromCommaPattern},
		{name: "phrase_pattern", fn: e.fromPhrases},
		{name: "single_token", fn: e.fromTokens},
	})
}

func (e *LocationExtractor) fromCommaPattern(item *search.Result) string {
	for _, text := range []string{item.Snippet, StripSiteSuffix(item.Title)} {
		for _, m := range cityCountryPattern.FindAllStringSubmatch(text, -1) {
			city, country := m[1], m[2]
			if e.dict.IsCity(city) && (e.dict.IsCountry(country) || e.dict.IsRegion(country)) {
				return e.standardize(city + ", " + country)
			}
			if e.dict.IsCity(city) && !e.dict.IsKnownLocation(country) {
				// Country token is noise; the city alone still validates.
				return e.standardize(city)
			}
		}
	}
	return ""
}

func (e *LocationExtractor) fromPhrases(item *search.Result) string {
	for _, text := range []string{item.Snippet, StripSiteSuffix(item.Title)} {
		for _, re := range e.dict.LocationPatterns() {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			candidate := strings.Trim(strings.TrimSpace(m[1]), ",.-")
			if validated := e.validate(candidate); validated != "" {
				return validated
			}
		}
	}
	return ""
}

func (e *LocationExtractor) fromTokens(item *search.Result) string {
	for _, text := range []string{item.Snippet, StripSiteSuffix(item.Title)} {
		for _, token := range tokenPattern.FindAllString(text, -1) {
			if e.dict.IsCity(token) || e.dict.IsCountry(token) {
				return e.standardize(token)
			}
		}
	}
	return ""
}

// validate accepts a phrase candidate when it, its comma head, or any of
// its words names a known place.
func (e *LocationExtractor) validate(candidate string) string {
	if candidate == "" {
		return ""
	}
	if e.dict.IsKnownLocation(candidate) {
		return e.standardize(candidate)
	}
	if head, _, ok := strings.Cut(candidate, ","); ok {
		if e.dict.IsKnownLocation(strings.TrimSpace(head)) {
			return e.standardize(candidate)
		}
	}
	for _, word := range strings.Fields(candidate) {
		word = strings.Trim(word, ",.")
		if e.dict.IsCity(word) || e.dict.IsCountry(word) {
			return e.standardize(word)
		}
	}
	return ""
}

// standardize strips qualifier words and canonicalizes known Swedish
// cities to "<City>, Sweden".
func (e *LocationExtractor) standardize(location string) string {
	out := strings.TrimSpace(location)
	for _, prefix := range []string{"Greater ", "Stor-"} {
		out = strings.TrimPrefix(out, prefix)
	}
	for _, suffix := range []string{" Area", " Region", " Metropolitan Area"} {
		out = strings.TrimSuffix(out, suffix)
	}
	out = strings.TrimSpace(out)

	if head, _, ok := strings.Cut(out, ","); ok {
		head = strings.TrimSpace(head)
		if e.dict.IsSwedishCity(head) {
			return head + ", Sweden"
		}
		return out
	}
	if e.dict.IsSwedishCity(out) {
		return out + ", Sweden"
	}
	return out
}
