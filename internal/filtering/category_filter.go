package filtering

import (
	"context"
	"fmt"

	"github.com/jonjonssons/sacore-ai/internal/profile"
	"github.com/jonjonssons/sacore-ai/internal/requirements"
)

type categoryFilter struct {
	category    requirements.Category
	categorizer *requirements.Categorizer
}

// NewCategory creates a filter that keeps profiles whose matched terms
// cover the given category. Membership is derived uniformly from the
// matched list and the categories present in the search; there is no
// perfect-score shortcut.
func NewCategory(category requirements.Category, categorizer *requirements.Categorizer) Filter {
	return &categoryFilter{category: category, categorizer: categorizer}
}

func (f *categoryFilter) Name() string { return "category" }

func (f *categoryFilter) Disable(string) {}

func (f *categoryFilter) IsEnabled() bool { return true }

func (f *categoryFilter) Validate() error {
	switch f.category {
	case requirements.CategoryLocation, requirements.CategoryTitles, requirements.CategoryIndustries:
		return nil
	default:
		return fmt.Errorf("unsupported filter category: %s", f.category)
	}
}

func (f *categoryFilter) Apply(_ context.Context, p *profile.Profiles) (*profile.Profiles, Step, error) {
	next, step := keep(p, func(item *profile.Profile) bool {
		return f.satisfies(item)
	})
	return next, step, nil
}

// satisfies reports whether the profile's matched-category set covers the
// filter's category. A matched term with no specific category of its own
// counts toward every category present in the search.
func (f *categoryFilter) satisfies(item *profile.Profile) bool {
	var present bool
	switch f.category {
	case requirements.CategoryLocation:
		present = item.Metadata.CategoriesInSearch.Location
	case requirements.CategoryTitles:
		present = item.Metadata.CategoriesInSearch.Title
	case requirements.CategoryIndustries:
		present = item.Metadata.CategoriesInSearch.Industry
	}
	if !present {
		return false
	}

	for _, term := range item.Metadata.MatchedRequirements {
		cat := f.categorizer.Categorize(term)
		if cat == f.category || cat == requirements.CategorySkill {
			return true
		}
	}
	return false
}

func (f *categoryFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{"category": string(f.category)},
	}
}
