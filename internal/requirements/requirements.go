// Package requirements defines the user-supplied hiring criteria and the
// heuristic that sorts free-text criteria into categories.
package requirements

import "strings"

// Category is the classification bucket for a requirement or matched term.
type Category string

const (
	CategoryLocation   Category = "Location"
	CategoryTitles     Category = "Titles"
	CategoryIndustries Category = "Industries"
	CategorySkill      Category = "Skill"
	CategoryOther      Category = "Other"
)

// Requirement is a weighted search criterion. Score 0 disables the
// requirement without deleting it.
type Requirement struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Score       float64  `json:"score"`
	Category    Category `json:"category"`
}

// Active reports whether the requirement participates in scoring.
func (r Requirement) Active() bool {
	return r.Score > 0 && strings.TrimSpace(r.Description) != ""
}

// CategorySet records which categories are present in the current active
// requirement collection. It is derived fresh on every scoring pass and
// never persisted on its own.
type CategorySet struct {
	Location bool `json:"location"`
	Title    bool `json:"title"`
	Industry bool `json:"industry"`
}

// Count returns the number of categories present, which is also the score
// ceiling for a profile.
func (c CategorySet) Count() int {
	n := 0
	if c.Location {
		n++
	}
	if c.Title {
		n++
	}
	if c.Industry {
		n++
	}
	return n
}

// Any reports whether at least one category is present.
func (c CategorySet) Any() bool { return c.Location || c.Title || c.Industry }

// Mark sets the flag for the given category. Skill and Other carry no
// category flag of their own.
func (c *CategorySet) Mark(cat Category) {
	switch cat {
	case CategoryLocation:
		c.Location = true
	case CategoryTitles:
		c.Title = true
	case CategoryIndustries:
		c.Industry = true
	}
}

// Active filters the list down to requirements that participate in scoring,
// preserving order.
func Active(reqs []Requirement) []Requirement {
	out := make([]Requirement, 0, len(reqs))
	for _, r := range reqs {
		if r.Active() {
			out = append(out, r)
		}
	}
	return out
}

// FirstLocation returns the description of the first active Location
// requirement. Only the first one is authoritative for the scoring model.
func FirstLocation(reqs []Requirement, categorize func(string) Category) string {
	for _, r := range reqs {
		if !r.Active() {
			continue
		}
		cat := r.Category
		if cat == "" || cat == CategoryOther {
			cat = categorize(r.Description)
		}
		if cat == CategoryLocation {
			return r.Description
		}
	}
	return ""
}
