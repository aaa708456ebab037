package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/jonjonssons/sacore-ai/internal/profile"
	"github.com/jonjonssons/sacore-ai/internal/requirements"
)

type stubGenerator struct {
	response string
	err      error
	prompt   string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testRequirements() []requirements.Requirement {
	return []requirements.Requirement{
		{ID: "req-1", Description: "Account Executive", Score: 1},
		{ID: "req-2", Description: "Stockholm", Score: 1},
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{response: `{"fit": true, "score": 0.8, "reason": "solid match"}`}
	m := NewMatcher(gen, zaptest.NewLogger(t), 0, 0)

	candidate := &profile.Profile{ID: "p1", Name: "Anna Karlsson", Title: "Account Executive"}
	got, err := m.Evaluate(context.Background(), testRequirements(), candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.Fit || got.Score != 0.8 || got.Reason != "solid match" {
		t.Fatalf("unexpected assessment: %+v", got)
	}

	// The prompt carries both payloads and no unfilled placeholders.
	if !strings.Contains(gen.prompt, "Account Executive") || !strings.Contains(gen.prompt, "Anna Karlsson") {
		t.Fatalf("prompt is missing payload data:\n%s", gen.prompt)
	}
	if strings.Contains(gen.prompt, "{{") {
		t.Fatalf("prompt has an unfilled placeholder:\n%s", gen.prompt)
	}
}

type stubCachingGenerator struct {
	stubGenerator
	cacheName string
	cacheErr  error
	payload   string
	usedCache string
}

func (s *stubCachingGenerator) EnsureRequirementsCache(_ context.Context, payload string) (string, error) {
	s.payload = payload
	return s.cacheName, s.cacheErr
}

func (s *stubCachingGenerator) GenerateContentWithCache(_ context.Context, prompt, cacheName string) (string, error) {
	s.prompt = prompt
	s.usedCache = cacheName
	return s.response, nil
}

func TestEvaluateUsesRequirementsCache(t *testing.T) {
	t.Parallel()

	gen := &stubCachingGenerator{
		stubGenerator: stubGenerator{response: `{"fit": true, "score": 0.9, "reason": "ok"}`},
		cacheName:     "caches/abc",
	}
	m := NewMatcher(gen, zaptest.NewLogger(t), 0, 0)

	candidate := &profile.Profile{ID: "p1", Name: "Anna Karlsson"}
	if _, err := m.Evaluate(context.Background(), testRequirements(), candidate); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gen.usedCache != "caches/abc" {
		t.Fatalf("expected the cached content to be used, got %q", gen.usedCache)
	}
	if !strings.Contains(gen.payload, "Account Executive") {
		t.Fatalf("cache payload must carry the requirements:\n%s", gen.payload)
	}
	// The cached path sends the candidate only.
	if strings.Contains(gen.prompt, "Account Executive") || !strings.Contains(gen.prompt, "Anna Karlsson") {
		t.Fatalf("unexpected cached prompt:\n%s", gen.prompt)
	}
}

func TestEvaluateFallsBackWhenCacheFails(t *testing.T) {
	t.Parallel()

	gen := &stubCachingGenerator{
		stubGenerator: stubGenerator{response: `{"fit": true, "score": 0.9, "reason": "ok"}`},
		cacheErr:      errors.New("cache quota"),
	}
	m := NewMatcher(gen, zaptest.NewLogger(t), 0, 0)

	if _, err := m.Evaluate(context.Background(), testRequirements(), &profile.Profile{ID: "p1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gen.usedCache != "" {
		t.Fatalf("cache failure must fall back to the inline prompt")
	}
	if !strings.Contains(gen.prompt, "Account Executive") {
		t.Fatalf("inline prompt must carry the requirements:\n%s", gen.prompt)
	}
}

func TestEvaluateScoreThreshold(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{response: `{"fit": true, "score": 0.4, "reason": "weak"}`}
	m := NewMatcher(gen, zaptest.NewLogger(t), 0.6, 0)

	got, err := m.Evaluate(context.Background(), testRequirements(), &profile.Profile{ID: "p1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Fit {
		t.Fatalf("score below threshold must flip fit to false: %+v", got)
	}
}

func TestEvaluateRequiresCandidate(t *testing.T) {
	t.Parallel()

	m := NewMatcher(&stubGenerator{}, zaptest.NewLogger(t), 0, 0)
	if _, err := m.Evaluate(context.Background(), testRequirements(), nil); err == nil {
		t.Fatalf("expected error for nil candidate")
	}
}

func TestEvaluatePropagatesGeneratorError(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{err: errors.New("quota exceeded")}
	m := NewMatcher(gen, zaptest.NewLogger(t), 0, 0)

	if _, err := m.Evaluate(context.Background(), testRequirements(), &profile.Profile{ID: "p1"}); err == nil {
		t.Fatalf("expected generator error to surface")
	}
}

func TestParseResponse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		raw     string
		wantFit bool
		want    float64
		wantErr bool
	}{
		{
			name:    "plain json",
			raw:     `{"fit": true, "score": 0.9, "reason": "good"}`,
			wantFit: true,
			want:    0.9,
		},
		{
			name:    "fenced json",
			raw:     "```json\n{\"fit\": false, \"score\": 0.1, \"reason\": \"weak\"}\n```",
			wantFit: false,
			want:    0.1,
		},
		{
			name:    "string typed fields",
			raw:     `{"fit": "yes", "score": "0.7", "reason": "ok"}`,
			wantFit: true,
			want:    0.7,
		},
		{
			name: "missing score defaults to zero",
			raw:  `{"fit": false, "reason": "no info"}`,
			want: 0,
		},
		{
			name:    "not json",
			raw:     "I cannot answer that.",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseResponse(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected a parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Fit != tc.wantFit || got.Score != tc.want {
				t.Fatalf("unexpected assessment: %+v", got)
			}
		})
	}
}
