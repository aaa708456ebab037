// Package profile defines the candidate record produced by extraction and
// consumed by scoring, filtering and presentation.
package profile

import (
	"fmt"

	"github.com/jonjonssons/sacore-ai/internal/requirements"
)

// Field names accepted by Profiles.Exclude and the free-field filters.
const (
	IDField       = "ID"
	URLField      = "URL"
	NameField     = "Name"
	TitleField    = "Title"
	CompanyField  = "Company"
	LocationField = "Location"
)

// Metadata carries the explainability output of a scoring pass. It is
// replaced wholesale on every pass, never merged.
type Metadata struct {
	MatchedRequirements   []string                 `json:"matchedRequirements"`
	UnmatchedRequirements []string                 `json:"unmatchedRequirements"`
	CategoriesInSearch    requirements.CategorySet `json:"categoriesInSearch"`
}

// Profile is one candidate derived from one search result. Empty strings
// are the explicit "unknown" sentinel for the extracted fields.
type Profile struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	// Snippet keeps the raw result text so scoring can match terms the
	// extractors did not lift into a structured field.
	Snippet string `json:"snippet,omitempty"`

	Score    int      `json:"score"`
	Metadata Metadata `json:"metadata"`

	// Overrides lists fields edited by the user. An overridden field is
	// authoritative and must survive re-extraction and re-scoring.
	Overrides []string `json:"overrides,omitempty"`
}

// GetStringField returns the named extracted field value.
func (p *Profile) GetStringField(name string) string {
	switch name {
	case IDField:
		return p.ID
	case URLField:
		return p.URL
	case NameField:
		return p.Name
	case TitleField:
		return p.Title
	case CompanyField:
		return p.Company
	case LocationField:
		return p.Location
	default:
		return ""
	}
}

// Overridden reports whether the user has taken ownership of the field.
func (p *Profile) Overridden(field string) bool {
	for _, f := range p.Overrides {
		if f == field {
			return true
		}
	}
	return false
}

// SetOverride records a user edit, making the field authoritative.
func (p *Profile) SetOverride(field, value string) {
	switch field {
	case NameField:
		p.Name = value
	case TitleField:
		p.Title = value
	case CompanyField:
		p.Company = value
	case LocationField:
		p.Location = value
	default:
		return
	}
	if !p.Overridden(field) {
		p.Overrides = append(p.Overrides, field)
	}
}

// DisplayName returns the name or a positional fallback label when the
// extractors could not determine one.
func (p *Profile) DisplayName(position int) string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("Candidate %d", position+1)
}

// MatchedTerm reports whether the given requirement term is on the
// profile's matched list.
func (p *Profile) MatchedTerm(term string) bool {
	for _, m := range p.Metadata.MatchedRequirements {
		if m == term {
			return true
		}
	}
	return false
}
