// Package dictionary holds the static term tables used by the field
// extractors and the requirement categorizer. A Bundle is built once at
// startup and read-only afterwards; every lookup is case-insensitive and
// an exact match always wins over a substring match.
package dictionary

import (
	"regexp"
	"strings"
)

// Company is a whitelisted employer. SaaS marks companies that count as
// software-as-a-service businesses for the scoring special cases.
type Company struct {
	Name string
	SaaS bool
}

// Synonym is a locale-tagged spelling of a concept such as "sales".
type Synonym struct {
	Term   string
	Locale string
}

// Bundle aggregates every static table. Construct it with Default or build
// a minimal one by hand in tests; extractors never reach for package-level
// state.
type Bundle struct {
	companies      []Company
	companyIndex   map[string]Company
	blacklist      map[string]struct{}
	cities         map[string]struct{}
	countries      map[string]struct{}
	regions        map[string]struct{}
	swedishCities  map[string]struct{}
	industryTerms  map[string]struct{}
	shortCompanies map[string]struct{}

	jobTitlePatterns []*regexp.Regexp
	locationPatterns []*regexp.Regexp

	salesTitles    []string
	salesActivity  []string
	saasIndicators []string
	salesSynonyms  []Synonym
	saasSynonyms   []Synonym

	surnames []string
}

// Config carries the raw tables for a Bundle. Zero-value slices are valid
// and simply make the corresponding lookups always miss.
type Config struct {
	Companies              []Company
	NonCompanyBlacklist    []string
	Cities                 []string
	Countries              []string
	Regions                []string
	SwedishCities          []string
	IndustryTerms          []string
	ShortCompanyAllowlist  []string
	JobTitlePatterns       []string
	LocationPatterns       []string
	SalesRoleTitles        []string
	SalesActivityTerms     []string
	SaaSIndicatorTerms     []string
	SalesSynonyms          []Synonym
	SaaSSynonyms           []Synonym
	FallbackSurnames       []string
}

// New compiles a Bundle from the provided tables. Patterns that fail to
// compile are skipped rather than aborting startup; the tables are static
// and a broken pattern only narrows recall.
func New(cfg Config) *Bundle {
	b := &Bundle{
		companies:      cfg.Companies,
		companyIndex:   make(map[string]Company, len(cfg.Companies)),
		blacklist:      toSet(cfg.NonCompanyBlacklist),
		cities:         toSet(cfg.Cities),
		countries:      toSet(cfg.Countries),
		regions:        toSet(cfg.Regions),
		swedishCities:  toSet(cfg.SwedishCities),
		industryTerms:  toSet(cfg.IndustryTerms),
		shortCompanies: toSet(cfg.ShortCompanyAllowlist),
		salesTitles:    lowerAll(cfg.SalesRoleTitles),
		salesActivity:  lowerAll(cfg.SalesActivityTerms),
		saasIndicators: lowerAll(cfg.SaaSIndicatorTerms),
		salesSynonyms:  cfg.SalesSynonyms,
		saasSynonyms:   cfg.SaaSSynonyms,
		surnames:       cfg.FallbackSurnames,
	}

	for _, c := range cfg.Companies {
		b.companyIndex[strings.ToLower(c.Name)] = c
	}

	for _, p := range cfg.JobTitlePatterns {
		if re, err := regexp.Compile("(?i)" + p); err == nil {
			b.jobTitlePatterns = append(b.jobTitlePatterns, re)
		}
	}
	for _, p := range cfg.LocationPatterns {
		if re, err := regexp.Compile("(?i)" + p); err == nil {
			b.locationPatterns = append(b.locationPatterns, re)
		}
	}

	return b
}

// Default returns the built-in production tables.
func Default() *Bundle {
	return New(defaultConfig)
}

// DefaultConfig returns a copy of the built-in tables so callers can extend
// them before compiling a Bundle.
func DefaultConfig() Config {
	return defaultConfig
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(strings.TrimSpace(item))] = struct{}{}
	}
	return set
}

func lowerAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.ToLower(item))
	}
	return out
}

// MatchCompany looks text up against the company whitelist. An exact
// (case-insensitive) match is preferred; otherwise the longest whitelisted
// name contained in the text wins, so "Spotify Technology" resolves to
// "Spotify" rather than a shorter accidental hit.
func (b *Bundle) MatchCompany(text string) (Company, bool) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return Company{}, false
	}

	if c, ok := b.companyIndex[lowered]; ok {
		return c, true
	}

	var best Company
	found := false
	for _, c := range b.companies {
		name := strings.ToLower(c.Name)
		if containsWord(lowered, name) && (!found || len(c.Name) > len(best.Name)) {
			best = c
			found = true
		}
	}
	return best, found
}

// IsSaaSCompany reports whether the name resolves to a whitelisted company
// flagged as SaaS.
func (b *Bundle) IsSaaSCompany(name string) bool {
	c, ok := b.MatchCompany(name)
	return ok && c.SaaS
}

// IsBlacklisted reports whether the term is rejected as a company name.
// The check covers exact, prefix, suffix and whole-word containment so
// that "LinkedIn Profile" is caught by the "linkedin" entry.
func (b *Bundle) IsBlacklisted(term string) bool {
	lowered := strings.ToLower(strings.TrimSpace(term))
	if lowered == "" {
		return true
	}
	if _, ok := b.blacklist[lowered]; ok {
		return true
	}
	for entry := range b.blacklist {
		if strings.HasPrefix(lowered, entry+" ") || strings.HasSuffix(lowered, " "+entry) {
			return true
		}
		if containsWord(lowered, entry) {
			return true
		}
	}
	return false
}

func (b *Bundle) IsCity(s string) bool    { return contains(b.cities, s) }
func (b *Bundle) IsCountry(s string) bool { return contains(b.countries, s) }
func (b *Bundle) IsRegion(s string) bool  { return contains(b.regions, s) }

// IsSwedishCity reports whether the city should be canonicalized to
// "<City>, Sweden" by the location cleanup pass.
func (b *Bundle) IsSwedishCity(s string) bool { return contains(b.swedishCities, s) }

// IsKnownLocation reports whether the string names any known city, country
// or region.
func (b *Bundle) IsKnownLocation(s string) bool {
	return b.IsCity(s) || b.IsCountry(s) || b.IsRegion(s)
}

// IsIndustryTerm reports whether the string is an industry or department
// term, which disqualifies it as a company name.
func (b *Bundle) IsIndustryTerm(s string) bool { return contains(b.industryTerms, s) }

// AllowShortCompany reports whether a name shorter than the minimum company
// length is still acceptable, e.g. "IBM" or "H&M".
func (b *Bundle) AllowShortCompany(s string) bool { return contains(b.shortCompanies, s) }

// IsLikelyJobTitle reports whether the string matches at least one
// job-title indicator pattern.
func (b *Bundle) IsLikelyJobTitle(s string) bool {
	for _, re := range b.jobTitlePatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// LocationPatterns returns the compiled explicit location-phrase patterns,
// each with the place name in capture group 1.
func (b *Bundle) LocationPatterns() []*regexp.Regexp { return b.locationPatterns }

// IsSalesTitle reports whether the title contains a sales-role keyword.
func (b *Bundle) IsSalesTitle(title string) bool {
	return containsAny(title, b.salesTitles)
}

// HasSalesActivity reports whether free text mentions a sales activity
// keyword such as quota or prospecting.
func (b *Bundle) HasSalesActivity(text string) bool {
	return containsAny(text, b.salesActivity)
}

// HasSaaSIndicator reports whether free text mentions a SaaS or tech-role
// indicator term.
func (b *Bundle) HasSaaSIndicator(text string) bool {
	return containsAny(text, b.saasIndicators)
}

// MeansSales reports whether the term is a spelling of "sales" in any
// supported locale.
func (b *Bundle) MeansSales(term string) bool {
	return matchSynonym(term, b.salesSynonyms)
}

// MeansSaaS reports whether the term is a spelling of "SaaS" in any
// supported locale.
func (b *Bundle) MeansSaaS(term string) bool {
	return matchSynonym(term, b.saasSynonyms)
}

// Surnames returns the fixed fallback surname list used when a URL-derived
// name has a single token.
func (b *Bundle) Surnames() []string { return b.surnames }

func contains(set map[string]struct{}, s string) bool {
	_, ok := set[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

func containsAny(text string, terms []string) bool {
	lowered := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

func matchSynonym(term string, synonyms []Synonym) bool {
	lowered := strings.ToLower(strings.TrimSpace(term))
	for _, syn := range synonyms {
		if lowered == strings.ToLower(syn.Term) {
			return true
		}
	}
	return false
}

// containsWord reports whether text contains entry bounded by
// non-alphanumeric runes, so "ab" does not match inside "about".
func containsWord(text, entry string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], entry)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(entry)
		if boundary(text, start-1) && boundary(text, end) {
			return true
		}
		idx = start + 1
		if idx >= len(text) {
			return false
		}
	}
}

func boundary(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	c := text[i]
	return !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9')
}
