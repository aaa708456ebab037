package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/jonjonssons/sacore-ai/internal/ai"
	"github.com/jonjonssons/sacore-ai/internal/logger"
	"github.com/jonjonssons/sacore-ai/internal/profile"
	"github.com/jonjonssons/sacore-ai/internal/requirements"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// cachedRequirementsGenerator is implemented by generators that can hold
// the requirement payload provider-side, so per-profile prompts only
// carry the candidate.
type cachedRequirementsGenerator interface {
	contentGenerator
	EnsureRequirementsCache(ctx context.Context, payload string) (string, error)
	GenerateContentWithCache(ctx context.Context, prompt, cacheName string) (string, error)
}

const cachedRequirementsNote = "The requirement set is provided as cached context above."

// Matcher asks Gemini whether a candidate profile fits the requirement
// set. It sits behind the heuristic scoring as an optional second
// opinion; the deterministic pipeline never depends on it.
type Matcher struct {
	generator contentGenerator
	minScore  float64
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

func NewMatcher(generator contentGenerator, log *zap.Logger, minScore float64, maxLogLength int) *Matcher {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Matcher{
		generator: generator,
		minScore:  minScore,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

func (m *Matcher) Evaluate(ctx context.Context, reqs []requirements.Requirement, candidate *profile.Profile) (*ai.FitAssessment, error) {
	if candidate == nil {
		return nil, fmt.Errorf("candidate profile is required")
	}

	reqsJSON, err := json.MarshalIndent(requirements.Active(reqs), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal requirements payload: %w", err)
	}

	candidateJSON, err := json.MarshalIndent(candidate, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal candidate payload: %w", err)
	}

	prompt, raw, err := m.generate(ctx, string(reqsJSON), string(candidateJSON))
	if err != nil {
		return nil, err
	}

	m.logger.Debug("gemini generate content request",
		zap.String("profile_id", candidate.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, m.maxLogLen)),
	)

	m.logger.Debug("gemini generate content response",
		zap.String("profile_id", candidate.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, m.maxLogLen)),
	)

	assessment, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	if m.minScore > 0 && !math.IsNaN(assessment.Score) && assessment.Score < m.minScore {
		m.logger.Debug("set fit to false by score threshold",
			zap.String("profile_id", candidate.ID),
			zap.Float64("score", assessment.Score),
			zap.Float64("threshold", m.minScore),
		)
		assessment.Fit = false
	}

	assessment.Raw = raw
	return assessment, nil
}

// generate prefers the cached-requirements path when the generator
// supports it. Cache creation failures fall back to the inline prompt.
func (m *Matcher) generate(ctx context.Context, reqsJSON, candidateJSON string) (string, string, error) {
	if cg, ok := m.generator.(cachedRequirementsGenerator); ok {
		if cacheName, err := cg.EnsureRequirementsCache(ctx, reqsJSON); err == nil && cacheName != "" {
			prompt := buildPrompt(cachedRequirementsNote, candidateJSON)
			raw, err := cg.GenerateContentWithCache(ctx, prompt, cacheName)
			return prompt, raw, err
		}
		m.logger.Debug("requirements cache unavailable, sending inline payload")
	}

	prompt := buildPrompt(reqsJSON, candidateJSON)
	raw, err := m.generator.GenerateContent(ctx, prompt)
	return prompt, raw, err
}

func buildPrompt(requirementsJSON, candidateJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Requirements:\n{{REQUIREMENTS_JSON}}\n\nCandidate:\n{{CANDIDATE_JSON}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{REQUIREMENTS_JSON}}", requirementsJSON)
	prompt = strings.ReplaceAll(prompt, "{{CANDIDATE_JSON}}", candidateJSON)
	return prompt
}

func parseResponse(raw string) (*ai.FitAssessment, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = extractJSON(cleaned)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	fit := coerceBool(data["fit"])
	score := coerceFloat(data["score"])
	reason := coerceString(data["reason"])

	if math.IsNaN(score) {
		score = 0
	}

	return &ai.FitAssessment{
		Fit:    fit,
		Score:  score,
		Reason: reason,
	}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		lower := strings.ToLower(strings.TrimSpace(val))
		return lower == "true" || lower == "yes"
	case float64:
		return val != 0
	default:
		return false
	}
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}
