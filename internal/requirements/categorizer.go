package requirements

import (
	"strings"

	"github.com/jonjonssons/sacore-ai/internal/dictionary"
)

// Categorizer classifies free-text requirement strings. The same logic runs
// in reverse at scoring time to decide which category a search term belongs
// to.
type Categorizer struct {
	dict *dictionary.Bundle
}

// NewCategorizer builds a categorizer over the provided dictionary bundle.
func NewCategorizer(dict *dictionary.Bundle) *Categorizer {
	return &Categorizer{dict: dict}
}

// prefix tokens take precedence over keyword heuristics.
var categoryPrefixes = []struct {
	prefix   string
	category Category
}{
	{"location", CategoryLocation},
	{"titles", CategoryTitles},
	{"title", CategoryTitles},
	{"industries", CategoryIndustries},
	{"industry", CategoryIndustries},
	{"skill", CategorySkill},
}

var locationKeywords = []string{
	"location", "based", "city", "country", "remote", "onsite", "hybrid",
	"region", "area", "bosatt", "plats",
}

// Categorize decides the category for a free-text requirement. Decision
// order: explicit prefix token, then location keywords and known place
// names, then job-title indicators, then industry terms. Anything else is
// a Skill.
func (c *Categorizer) Categorize(text string) Category {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return CategorySkill
	}

	lowered := strings.ToLower(trimmed)
	for _, p := range categoryPrefixes {
		if strings.HasPrefix(lowered, p.prefix+":") || strings.HasPrefix(lowered, p.prefix+" ") || lowered == p.prefix {
			return p.category
		}
	}

	if c.isLocation(lowered) {
		return CategoryLocation
	}
	if c.dict.IsLikelyJobTitle(trimmed) {
		return CategoryTitles
	}
	if c.isIndustry(lowered) {
		return CategoryIndustries
	}

	return CategorySkill
}

// IsGeneric reports whether the term matched no specific category. Generic
// terms mark all three categories as present in the search, which keeps
// broad searches from under-scoring.
func (c *Categorizer) IsGeneric(text string) bool {
	return c.Categorize(text) == CategorySkill
}

func (c *Categorizer) isLocation(lowered string) bool {
	if c.dict.IsKnownLocation(lowered) {
		return true
	}
	for _, kw := range locationKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	// "City, Country" style terms
	if city, country, ok := strings.Cut(lowered, ","); ok {
		if c.dict.IsCity(city) || c.dict.IsCountry(strings.TrimSpace(country)) {
			return true
		}
	}
	return false
}

func (c *Categorizer) isIndustry(lowered string) bool {
	if c.dict.IsIndustryTerm(lowered) {
		return true
	}
	if c.dict.MeansSaaS(lowered) {
		return true
	}
	for _, word := range strings.Fields(lowered) {
		if c.dict.IsIndustryTerm(word) {
			return true
		}
	}
	return false
}
