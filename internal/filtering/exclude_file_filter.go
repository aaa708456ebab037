package filtering

import (
	"context"
	"fmt"
	"os"

	"github.com/jonjonssons/sacore-ai/internal/profile"
)

type excludeFileFilter struct {
	path string
}

// NewExcludeFile creates a filter that removes profiles the user has
// previously dismissed, keyed by normalized profile URL.
func NewExcludeFile(path string) Filter {
	return &excludeFileFilter{
		path: path,
	}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(string) {}

func (f *excludeFileFilter) IsEnabled() bool { return true }

func (f *excludeFileFilter) Validate() error { return nil }

func (f *excludeFileFilter) Apply(_ context.Context, p *profile.Profiles) (*profile.Profiles, Step, error) {
	initial := p.Len()
	if f.path == "" {
		return p, Step{Initial: initial, Dropped: 0, Left: p.Len()}, nil
	}

	dismissed, err := profile.GetDismissedFromFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return p, Step{}, fmt.Errorf("getting dismissed profiles from file: %w", err)
		}
		dismissed = &profile.DismissedProfiles{}
	}

	removed := p.Exclude(profile.URLField, dismissed.URLs())

	return p, Step{Initial: initial, Dropped: len(removed), Left: p.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
