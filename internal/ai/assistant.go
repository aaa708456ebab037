package ai

import (
	"context"

	"github.com/jonjonssons/sacore-ai/internal/profile"
	"github.com/jonjonssons/sacore-ai/internal/requirements"
)

// FitAssessment is one provider verdict on a candidate profile.
type FitAssessment struct {
	Fit    bool
	Score  float64
	Reason string
	Raw    string
}

// Matcher assesses how well a candidate profile fits the active
// requirement set. Implementations live under provider subpackages.
type Matcher interface {
	Evaluate(ctx context.Context, reqs []requirements.Requirement, candidate *profile.Profile) (*FitAssessment, error)
}
