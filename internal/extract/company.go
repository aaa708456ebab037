package extract

import (
	"regexp"
	"strings"

	"github.com/jonjonssons/sacore-ai/internal/dictionary"
	"github.com/jonjonssons/sacore-ai/internal/search"
)

// CompanyExtractor lifts an employer name out of a result item.
type CompanyExtractor struct {
	dict *dictionary.Bundle
}

func NewCompanyExtractor(dict *dictionary.Bundle) *CompanyExtractor {
	return &CompanyExtractor{dict: dict}
}

const minCompanyLength = 5

// Legal-form suffixes that mark a preceding capitalized run as a company.
var legalSuffixPattern = regexp.MustCompile(`\b([\p{Lu}][\w&.-]*(?:\s+[\p{Lu}][\w&.-]*){0,3})\s+(AB|AS|ASA|Oy|Oyj|A/S|ApS|Inc|LLC|Ltd|GmbH|AG|BV|SA|PLC|Corp)\b\.?`)

// "<person/role> at <Company>" and regional variants; the company is the
// capitalized run after the preposition.
var atCompanyPattern = regexp.MustCompile(`(?:\bat\b|@|\bhos\b|\bpå\b)\s+([\p{Lu}][\w&.-]*(?:\s+[\p{Lu}][\w&.-]*){0,3})`)

// Capitalized runs considered by the free-token scan.
var capitalizedRunPattern = regexp.MustCompile(`\b[\p{Lu}][\w&.-]*(?:\s+[\p{Lu}][\w&.-]*){0,3}\b`)

// Suffix words that make a capitalized run look like a company on their own.
var companySuffixWords = []string{
	"Group", "Solutions", "Technologies", "Tech", "Labs", "Systems",
	"Partners", "Consulting", "Digital", "Software", "Media", "Studio",
	"Ventures", "Capital", "Agency",
}

// Extract returns the best-effort company and the producing strategy. A
// whitelist hit wins immediately and skips the rejection filter; every
// other candidate must survive it.
func (e *CompanyExtractor) Extract(item *search.Result) (string, string) {
	return runChain(item, []strategy{
		{name: "whitelist", fn: e.fromWhitelist},
		{name: "suffix_pattern", fn: e.fromPatterns},
		{name: "token_scan", fn: e.fromTokenScan},
	})
}

func (e *CompanyExtractor) fromWhitelist(item *search.Result) string {
	for _, text := range []string{item.Snippet, StripSiteSuffix(item.Title)} {
		if c, ok := e.dict.MatchCompany(text); ok {
			return c.Name
		}
	}
	return ""
}

func (e *CompanyExtractor) fromPatterns(item *search.Result) string {
	for _, text := range []string{item.Snippet, StripSiteSuffix(item.Title)} {
		if m := legalSuffixPattern.FindStringSubmatch(text); m != nil {
			candidate := strings.TrimSpace(m[1] + " " + m[2])
			if e.accept(m[1]) {
				return candidate
			}
		}
		if m := atCompanyPattern.FindStringSubmatch(text); m != nil {
			candidate := trimCompanyTail(m[1])
			if e.accept(candidate) {
				return candidate
			}
		}
	}
	return ""
}

// fromTokenScan hunts for capitalized runs that look company-like on their
// own: camelCase, a company suffix word, an ampersand or an embedded digit.
func (e *CompanyExtractor) fromTokenScan(item *search.Result) string {
	for _, text := range []string{item.Snippet, StripSiteSuffix(item.Title)} {
		for _, run := range capitalizedRunPattern.FindAllString(text, -1) {
			candidate := trimCompanyTail(run)
			if !looksCompanyLike(candidate) {
				continue
			}
			if e.accept(candidate) {
				return candidate
			}
		}
	}
	return ""
}

// accept is the three-way rejection filter: not blacklisted, not a job
// title, not a location or industry term. Short strings additionally need
// the well-known allowlist.
func (e *CompanyExtractor) accept(candidate string) bool {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return false
	}
	if len(trimmed) < minCompanyLength && !e.dict.AllowShortCompany(trimmed) {
		return false
	}
	if e.dict.IsBlacklisted(trimmed) {
		return false
	}
	if e.dict.IsLikelyJobTitle(trimmed) {
		return false
	}
	if e.dict.IsKnownLocation(trimmed) {
		return false
	}
	if e.dict.IsIndustryTerm(trimmed) {
		return false
	}
	return true
}

func looksCompanyLike(run string) bool {
	if hasCamelCase(run) || strings.Contains(run, "&") || containsDigit(run) {
		return true
	}
	for _, suffix := range companySuffixWords {
		if strings.HasSuffix(run, " "+suffix) {
			return true
		}
	}
	return false
}

func hasCamelCase(s string) bool {
	for _, word := range strings.Fields(s) {
		runes := []rune(word)
		for i := 1; i < len(runes); i++ {
			if runes[i] >= 'A' && runes[i] <= 'Z' && runes[i-1] >= 'a' && runes[i-1] <= 'z' {
				return true
			}
		}
	}
	return false
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

func trimCompanyTail(s string) string {
	return strings.Trim(strings.TrimSpace(s), ",.-–—")
}
