package filtering

import (
	"context"
	"strings"

	"github.com/jonjonssons/sacore-ai/internal/profile"
)

type termFilter struct {
	terms []string
}

// NewTerm creates a filter that keeps profiles whose matched list contains
// every one of the given requirement terms, verbatim.
func NewTerm(terms []string) Filter {
	return &termFilter{terms: terms}
}

func (f *termFilter) Name() string { return "term" }

func (f *termFilter) Disable(string) {}

func (f *termFilter) IsEnabled() bool { return true }

func (f *termFilter) Validate() error { return nil }

func (f *termFilter) Apply(_ context.Context, p *profile.Profiles) (*profile.Profiles, Step, error) {
	if len(f.terms) == 0 {
		return p, Step{Initial: p.Len(), Dropped: 0, Left: p.Len()}, nil
	}

	next, step := keep(p, func(item *profile.Profile) bool {
		for _, term := range f.terms {
			if !item.MatchedTerm(term) {
				return false
			}
		}
		return true
	})
	return next, step, nil
}

func (f *termFilter) Status() Status {
	details := map[string]string{}
	if len(f.terms) > 0 {
		details["terms"] = strings.Join(f.terms, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
