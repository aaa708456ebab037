// Package scoring computes category-based match scores for candidate
// profiles against the active requirement set, with per-candidate
// matched/unmatched explanations.
package scoring

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jonjonssons/sacore-ai/internal/dictionary"
	"github.com/jonjonssons/sacore-ai/internal/profile"
	"github.com/jonjonssons/sacore-ai/internal/requirements"
)

// Result is the immutable outcome of scoring one profile. The caller
// decides whether to copy it onto the stored profile; the engine never
// patches metadata incrementally.
type Result struct {
	Score      int
	Matched    []string
	Unmatched  []string
	Categories requirements.CategorySet
}

// Engine scores profiles. Pure given its dictionaries; safe to re-run any
// number of times over the same inputs.
type Engine struct {
	dict        *dictionary.Bundle
	categorizer *requirements.Categorizer
	logger      *zap.Logger

	// maxOverride adjusts MaxScore downward when set via the stored
	// override record. Negative means no override.
	maxOverride int
}

func NewEngine(dict *dictionary.Bundle, categorizer *requirements.Categorizer, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		dict:        dict,
		categorizer: categorizer,
		logger:      log,
		maxOverride: -1,
	}
}

// SetMaxScoreOverride pins the score ceiling below the derived value.
// Values outside [0,3] clear the override.
func (e *Engine) SetMaxScoreOverride(n int) {
	if n < 0 || n > 3 {
		n = -1
	}
	e.maxOverride = n
}

// MaxScore is the process-wide score ceiling: 3 when any category is
// present in the requirement set, adjustable downward only by the stored
// override.
func (e *Engine) MaxScore(reqs []requirements.Requirement) int {
	derived := 0
	if e.CategoriesInSearch(reqs).Any() {
		derived = 3
	}
	if e.maxOverride >= 0 && e.maxOverride < derived {
		return e.maxOverride
	}
	return derived
}

// CategoriesInSearch derives the category triple for the active
// requirement set. A term matching no specific category marks all three
// categories present; broad terms must not under-score.
func (e *Engine) CategoriesInSearch(reqs []requirements.Requirement) requirements.CategorySet {
	var set requirements.CategorySet
	for _, r := range requirements.Active(reqs) {
		cat := e.effectiveCategory(r)
		if cat == requirements.CategorySkill {
			return requirements.CategorySet{Location: true, Title: true, Industry: true}
		}
		set.Mark(cat)
	}
	return set
}

// Score evaluates one profile against the requirement set and returns a
// fresh Result. Matched/unmatched preserve requirement order.
func (e *Engine) Score(p *profile.Profile, reqs []requirements.Requirement) Result {
	active := requirements.Active(reqs)
	result := Result{
		Matched:    []string{},
		Unmatched:  []string{},
		Categories: e.CategoriesInSearch(reqs),
	}

	// Only the first location requirement is authoritative for the
	// benefit-of-the-doubt rule below.
	searchedLocation := requirements.FirstLocation(active, e.categorizer.Categorize)

	var tally requirements.CategorySet
	for _, r := range active {
		term := strings.TrimSpace(r.Description)
		hit, field := e.matchTerm(p, term)
		if !hit {
			result.Unmatched = append(result.Unmatched, r.Description)
			continue
		}

		result.Matched = append(result.Matched, r.Description)
		tally.Mark(e.tallyCategory(r, field))
	}

	// An explicitly searched location scores even when the snippet never
	// confirms it, as long as the profile does not contradict it: the
	// query already restricted results by place, and snippets rarely
	// repeat it. The term still lands on the unmatched list.
	locationSatisfied := tally.Location || (searchedLocation != "" && p.Location == "")

	if result.Categories.Location && locationSatisfied {
		result.Score++
	}
	if result.Categories.Title && tally.Title {
		result.Score++
	}
	if result.Categories.Industry && tally.Industry {
		result.Score++
	}

	return result
}

// ScoreAll re-scores the whole batch, replacing each profile's score and
// metadata wholesale. Not safe to run concurrently over the same batch
// without external serialization.
func (e *Engine) ScoreAll(profiles *profile.Profiles, reqs []requirements.Requirement) {
	for _, p := range profiles.Items {
		result := e.Score(p, reqs)
		p.Score = result.Score
		p.Metadata = profile.Metadata{
			MatchedRequirements:   result.Matched,
			UnmatchedRequirements: result.Unmatched,
			CategoriesInSearch:    result.Categories,
		}
	}

	e.logger.Debug("scored batch",
		zap.Int("profiles", profiles.Len()),
		zap.Int("requirements", len(requirements.Active(reqs))),
		zap.Int("max_score", e.MaxScore(reqs)),
	)
}

// matchTerm tests substring containment against the profile fields in
// fixed order, then falls through to the narrow special-case rules.
func (e *Engine) matchTerm(p *profile.Profile, term string) (bool, string) {
	if term == "" {
		return false, ""
	}
	lowered := strings.ToLower(term)

	fields := []struct {
		name  string
		value string
	}{
		{profile.NameField, p.Name},
		{profile.TitleField, p.Title},
		{profile.CompanyField, p.Company},
		{profile.LocationField, p.Location},
		{"Snippet", p.Snippet},
	}
	for _, f := range fields {
		if f.value != "" && strings.Contains(strings.ToLower(f.value), lowered) {
			return true, f.name
		}
	}

	if e.dict.MeansSaaS(lowered) && e.matchesSaaS(p) {
		return true, profile.CompanyField
	}
	if e.dict.MeansSales(lowered) && e.matchesSales(p) {
		return true, profile.TitleField
	}
	if isAccountExecutiveTerm(lowered) && titleIsAccountExecutive(p.Title) {
		return true, profile.TitleField
	}

	return false, ""
}

// matchesSaaS applies the SaaS special rule: a whitelisted SaaS employer,
// or SaaS/tech-role indicators in the title or snippet.
func (e *Engine) matchesSaaS(p *profile.Profile) bool {
	if p.Company != "" && e.dict.IsSaaSCompany(p.Company) {
		return true
	}
	return e.dict.HasSaaSIndicator(p.Title) || e.dict.HasSaaSIndicator(p.Snippet)
}

// matchesSales applies the sales special rule: a sales-role keyword in the
// title, or a sales-activity keyword in the snippet.
func (e *Engine) matchesSales(p *profile.Profile) bool {
	return e.dict.IsSalesTitle(p.Title) || e.dict.HasSalesActivity(p.Snippet)
}

// tallyCategory maps a matched requirement onto the category tally. When
// the term itself is categorically ambiguous the field it matched in
// decides.
func (e *Engine) tallyCategory(r requirements.Requirement, field string) requirements.Category {
	cat := e.effectiveCategory(r)
	if cat != requirements.CategorySkill {
		return cat
	}
	switch field {
	case profile.LocationField:
		return requirements.CategoryLocation
	case profile.TitleField:
		return requirements.CategoryTitles
	case profile.CompanyField:
		return requirements.CategoryIndustries
	default:
		return requirements.CategorySkill
	}
}

// effectiveCategory trusts an explicit category on the requirement and
// falls back to categorizing the description text.
func (e *Engine) effectiveCategory(r requirements.Requirement) requirements.Category {
	switch r.Category {
	case requirements.CategoryLocation, requirements.CategoryTitles, requirements.CategoryIndustries:
		return r.Category
	default:
		return e.categorizer.Categorize(r.Description)
	}
}

// account-executive variant matching.
var aeVariants = []string{"account executive", "enterprise ae", "sr ae", "sr. ae"}

func isAccountExecutiveTerm(lowered string) bool {
	if lowered == "ae" {
		return true
	}
	for _, v := range aeVariants {
		if lowered == v {
			return true
		}
	}
	return false
}

func titleIsAccountExecutive(title string) bool {
	lowered := strings.ToLower(title)
	if strings.Contains(lowered, "account executive") {
		return true
	}
	for _, word := range strings.Fields(lowered) {
		if strings.Trim(word, ".,") == "ae" {
			return true
		}
	}
	return false
}
