package filtering

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonjonssons/sacore-ai/internal/profile"
)

type fieldFilter struct {
	field string
	query string
}

// NewField creates a filter that keeps profiles whose named field contains
// the query, case-insensitively. Supported fields: Title, Company,
// Location.
func NewField(field, query string) Filter {
	return &fieldFilter{field: field, query: strings.TrimSpace(query)}
}

func (f *fieldFilter) Name() string { return "field" }

func (f *fieldFilter) Disable(string) {}

func (f *fieldFilter) IsEnabled() bool { return true }

func (f *fieldFilter) Validate() error {
	switch f.field {
	case profile.TitleField, profile.CompanyField, profile.LocationField:
		return nil
	default:
		return fmt.Errorf("unsupported filter field: %s", f.field)
	}
}

func (f *fieldFilter) Apply(_ context.Context, p *profile.Profiles) (*profile.Profiles, Step, error) {
	if f.query == "" {
		return p, Step{Initial: p.Len(), Dropped: 0, Left: p.Len()}, nil
	}

	lowered := strings.ToLower(f.query)
	next, step := keep(p, func(item *profile.Profile) bool {
		return strings.Contains(strings.ToLower(item.GetStringField(f.field)), lowered)
	})
	return next, step, nil
}

func (f *fieldFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{"field": f.field, "query": f.query},
	}
}
