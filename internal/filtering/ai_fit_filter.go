package filtering

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonjonssons/sacore-ai/internal/ai"
	"github.com/jonjonssons/sacore-ai/internal/profile"
	"github.com/jonjonssons/sacore-ai/internal/requirements"
	"github.com/jonjonssons/sacore-ai/internal/utils"
)

var retryBackoff = 2 * time.Second

type aiFitFilter struct {
	enabled bool
	reason  string
	config  *AIFitFilterConfig
	deps    *AIFitFilterDeps

	assessments map[string]*ai.FitAssessment
}

type AIFitFilterDeps struct {
	Logger       *zap.Logger
	Matcher      ai.Matcher
	Requirements []requirements.Requirement
	ExcludeFile  string
}

type AIFitFilterConfig struct {
	Enabled         bool
	Provider        string
	MinimumFitScore float64
	Gemini          *AIGeminiConfig
}

// AIGeminiConfig stores Gemini provider configuration.
type AIGeminiConfig struct {
	Model        string
	MaxRetries   int
	MaxLogLength int
}

// NewAIFit creates the AI-based second-opinion step. Disabled unless
// explicitly configured; evaluation failures keep the profile rather than
// dropping it.
func NewAIFit(cfg *AIFitFilterConfig, deps *AIFitFilterDeps) Filter {
	return &aiFitFilter{
		enabled: cfg.Enabled,
		config:  cfg,
		deps:    deps,
	}
}

func (f *aiFitFilter) Name() string { return "ai_fit" }

func (f *aiFitFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

// WithDeps injects runtime dependencies that are not known at construction.
func (f *aiFitFilter) WithDeps(matcher ai.Matcher, reqs []requirements.Requirement, logger *zap.Logger) {
	f.deps.Matcher = matcher
	f.deps.Requirements = reqs
	f.deps.Logger = logger
}

func (f *aiFitFilter) IsEnabled() bool { return f.enabled }

func (f *aiFitFilter) Validate() error {
	if f.deps == nil {
		return fmt.Errorf("deps are not initialized: filter is not usable")
	}
	if f.deps.Matcher == nil {
		return fmt.Errorf("ai matcher is required when ai filter is enabled")
	}
	provider := strings.TrimSpace(strings.ToLower(f.config.Provider))
	if provider != "" && provider != "gemini" {
		return fmt.Errorf("unsupported ai provider: %s", f.config.Provider)
	}
	return nil
}

func (f *aiFitFilter) Apply(ctx context.Context, p *profile.Profiles) (*profile.Profiles, Step, error) {
	initial := p.Len()
	logger := f.deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	f.assessments = make(map[string]*ai.FitAssessment, initial)
	approved := make([]*profile.Profile, 0, initial)

	for _, candidate := range p.Items {
		assessment, err := f.evaluateWithRetries(ctx, candidate)
		if err != nil {
			logger.Warn("AI evaluation failed",
				zap.String("profile_id", candidate.ID),
				zap.Error(err),
			)
			approved = append(approved, candidate)
			continue
		}

		f.assessments[candidate.ID] = assessment

		if !assessment.Fit {
			logger.Info("profile rejected by AI provider",
				zap.String("profile_id", candidate.ID),
				zap.Float64("ai_score", assessment.Score),
				zap.String("reason", assessment.Reason),
			)

			if err := f.appendToExcludeFile(candidate); err != nil {
				logger.Warn("failed to append profile to exclude file",
					zap.String("profile_id", candidate.ID),
					zap.Error(err),
				)
			}
			continue
		}

		logger.Info("profile approved by AI",
			zap.String("profile_id", candidate.ID),
			zap.Float64("ai_score", assessment.Score),
		)
		approved = append(approved, candidate)
	}

	p.Items = approved

	logger.Info("AI filtering completed",
		zap.Int("initial_profiles", initial),
		zap.Int("approved_profiles", len(approved)),
	)

	return p, Step{Initial: initial, Dropped: initial - len(approved), Left: len(approved)}, nil
}

func (f *aiFitFilter) evaluateWithRetries(ctx context.Context, candidate *profile.Profile) (*ai.FitAssessment, error) {
	retries := 0
	if f.config.Gemini != nil {
		retries = f.config.Gemini.MaxRetries
	}

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			if err := utils.WaitFor(ctx, retryBackoff); err != nil {
				return nil, err
			}
		}

		assessment, err := f.deps.Matcher.Evaluate(ctx, f.deps.Requirements, candidate)
		if err == nil {
			return assessment, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func (f *aiFitFilter) appendToExcludeFile(candidate *profile.Profile) error {
	path := strings.TrimSpace(f.deps.ExcludeFile)
	if path == "" {
		return nil
	}

	dismissed, err := profile.GetDismissedFromFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("load dismissed profiles: %w", err)
		}
		dismissed = &profile.DismissedProfiles{}
	}

	toAppend := (&profile.Profiles{Items: []*profile.Profile{candidate}}).ToDismissed()
	dismissed.Append(toAppend)

	if err := dismissed.ToFile(path); err != nil {
		return fmt.Errorf("write dismissed profiles: %w", err)
	}

	return nil
}

// Assessments returns the verdicts collected during the last Apply.
func (f *aiFitFilter) Assessments() map[string]*ai.FitAssessment {
	if f.assessments == nil {
		return map[string]*ai.FitAssessment{}
	}
	return f.assessments
}

func (f *aiFitFilter) Status() Status {
	details := map[string]string{}
	if f.config != nil {
		details["minimum_fit_score"] = strconv.FormatFloat(f.config.MinimumFitScore, 'f', 2, 64)
		details["enabled"] = boolDetail(f.enabled)
	}
	return Status{Name: f.Name(), Enabled: f.enabled, Reason: f.reason, Details: details}
}
