package filtering

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jonjonssons/sacore-ai/internal/profile"
)

type minScoreFilter struct {
	threshold int
}

// NewMinScore creates a filter that keeps profiles scoring at or above the
// threshold.
func NewMinScore(threshold int) Filter {
	return &minScoreFilter{threshold: threshold}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Disable(string) {}

func (f *minScoreFilter) IsEnabled() bool { return true }

func (f *minScoreFilter) Validate() error {
	if f.threshold < 0 || f.threshold > 3 {
		return fmt.Errorf("min score must be within [0,3], got %d", f.threshold)
	}
	return nil
}

func (f *minScoreFilter) Apply(_ context.Context, p *profile.Profiles) (*profile.Profiles, Step, error) {
	if f.threshold == 0 {
		return p, Step{Initial: p.Len(), Dropped: 0, Left: p.Len()}, nil
	}

	next, step := keep(p, func(item *profile.Profile) bool {
		return item.Score >= f.threshold
	})
	return next, step, nil
}

func (f *minScoreFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{"threshold": strconv.Itoa(f.threshold)},
	}
}
