package extract

import (
	"regexp"
	"strings"

	"github.com/jonjonssons/sacore-ai/internal/dictionary"
	"github.com/jonjonssons/sacore-ai/internal/search"
)

// TitleExtractor lifts a job title out of a result item.
type TitleExtractor struct {
	dict *dictionary.Bundle
}

func NewTitleExtractor(dict *dictionary.Bundle) *TitleExtractor {
	return &TitleExtractor{dict: dict}
}

// "<title> at <company>" and its regional variants.
var titleAtCompanyPattern = regexp.MustCompile(`(?i)([\p{L}][\p{L} /&,.-]{2,60}?)\s+(?:at|@|hos|på)\s+[\p{Lu}]`)

// Common titles looked up verbatim in the snippet, in priority order.
var commonTitles = []string{
	"Account Executive",
	"Account Manager",
	"Sales Manager",
	"Sales Director",
	"Business Development Manager",
	"Business Development Representative",
	"Sales Development Representative",
	"Customer Success Manager",
	"Key Account Manager",
	"Marketing Manager",
	"Product Manager",
	"Project Manager",
	"Software Engineer",
	"Sales Representative",
}

// Keyword co-occurrence fallbacks: every keyword present anywhere in the
// text maps to a canonical title.
var cooccurrenceTitles = []struct {
	keywords []string
	title    string
}{
	{keywords: []string{"sales", "account", "executive"}, title: "Account Executive"},
	{keywords: []string{"sales", "development", "representative"}, title: "Sales Development Representative"},
	{keywords: []string{"business", "development", "representative"}, title: "Business Development Representative"},
	{keywords: []string{"customer", "success", "manager"}, title: "Customer Success Manager"},
	{keywords: []string{"key", "account", "manager"}, title: "Key Account Manager"},
}

// Strings too generic to stand alone as a title after cleanup.
var tooGenericTitles = map[string]struct{}{
	"manager":  {},
	"senior":   {},
	"junior":   {},
	"lead":     {},
	"head":     {},
	"chef":     {},
	"director": {},
}

var (
	parentheticalPattern = regexp.MustCompile(`\([^)]*\)`)
	dateRangePattern     = regexp.MustCompile(`(?i)\b\d{4}\s*[-–—]\s*(?:\d{4}|present|nu|now|today)\b|\b\d{4}\s*[-–—]\s*$`)
	tenurePattern        = regexp.MustCompile(`(?i)\b\d+\+?\s*(?:yrs?|years?|år|months?|mos?|mnd)\b`)
	monthPattern         = regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|maj|jun|jul|aug|sep|okt|oct|nov|dec)\.?\b`)
	trailingPrepPattern  = regexp.MustCompile(`(?i)\s+(?:at|in|for|of|with|hos|på|i|för)$`)
	educationPattern     = regexp.MustCompile(`(?i)\b(?:university|universitet|högskola|college|school|institute|academy)\b.*$`)
)

// Extract returns the best-effort job title and the producing strategy.
// Every accepted candidate passes the indicator check and the cleanup
// pass; a candidate that cleanup reduces to nothing rejects the whole
// strategy and the chain moves on.
func (e *TitleExtractor) Extract(item *search.Result) (string, string) {
	return runChain(item, []strategy{
		{name: "separator", fn: e.fromSeparators},
		{name: "pattern", fn: e.fromPatterns},
		{name: "common_titles", fn: e.fromCommonTitles},
		{name: "keyword_cooccurrence", fn: e.fromCooccurrence},
	})
}

// fromSeparators scans separator-delimited parts of the title and snippet
// for the first part that validates as a job title. Text without any
// separator is left for the template strategies.
func (e *TitleExtractor) fromSeparators(item *search.Result) string {
	for _, text := range []string{StripSiteSuffix(item.Title), item.Snippet} {
		parts := splitOnSeparators(text)
		if len(parts) < 2 {
			continue
		}
		for _, part := range parts {
			if titleAtCompanyPattern.MatchString(part) {
				continue
			}
			if e.dict.IsLikelyJobTitle(part) {
				if cleaned := e.cleanup(part); cleaned != "" {
					return cleaned
				}
			}
		}
	}
	return ""
}

// fromPatterns applies the "<title> at <company>" template family. The
// captured prefix must itself contain a job-title keyword.
func (e *TitleExtractor) fromPatterns(item *search.Result) string {
	for _, text := range []string{item.Snippet, StripSiteSuffix(item.Title)} {
		for _, m := range titleAtCompanyPattern.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(m[1])
			// The capture can swallow a leading sentence; keep the last
			// separator-free clause.
			if idx := strings.LastIndexAny(candidate, ".!?"); idx >= 0 {
				candidate = strings.TrimSpace(candidate[idx+1:])
			}
			if candidate == "" || !e.dict.IsLikelyJobTitle(candidate) {
				continue
			}
			if cleaned := e.cleanup(candidate); cleaned != "" {
				return cleaned
			}
		}
	}
	return ""
}

func (e *TitleExtractor) fromCommonTitles(item *search.Result) string {
	haystack := strings.ToLower(item.Title + " " + item.Snippet)
	for _, title := range commonTitles {
		lowered := strings.ToLower(title)
		idx := strings.Index(haystack, lowered)
		if idx < 0 {
			continue
		}
		if strings.HasSuffix(haystack[:idx], "senior ") {
			return "Senior " + title
		}
		return title
	}
	return ""
}

func (e *TitleExtractor) fromCooccurrence(item *search.Result) string {
	haystack := strings.ToLower(item.Title + " " + item.Snippet)
	for _, combo := range cooccurrenceTitles {
		all := true
		for _, kw := range combo.keywords {
			if !strings.Contains(haystack, kw) {
				all = false
				break
			}
		}
		if all {
			return combo.title
		}
	}
	return ""
}

// cleanup strips parenthetical asides, date ranges, tenure durations,
// month abbreviations, education and location tails and dangling
// prepositions from an accepted title. Returns "" when what remains is too
// short or too generic to be useful.
func (e *TitleExtractor) cleanup(title string) string {
	out := parentheticalPattern.ReplaceAllString(title, " ")
	out = dateRangePattern.ReplaceAllString(out, " ")
	out = tenurePattern.ReplaceAllString(out, " ")
	out = monthPattern.ReplaceAllString(out, " ")
	out = educationPattern.ReplaceAllString(out, " ")
	out = e.stripLocationWords(out)
	out = strings.Join(strings.Fields(out), " ")
	out = strings.Trim(out, " ,.-–—|")

	for {
		next := trailingPrepPattern.ReplaceAllString(out, "")
		if next == out {
			break
		}
		out = strings.TrimSpace(next)
	}

	if len([]rune(out)) <= 2 {
		return ""
	}
	if _, generic := tooGenericTitles[strings.ToLower(out)]; generic {
		return ""
	}
	return out
}

func (e *TitleExtractor) stripLocationWords(title string) string {
	words := strings.Fields(title)
	kept := words[:0]
	for _, word := range words {
		if e.dict.IsKnownLocation(strings.Trim(word, ",.")) {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}
