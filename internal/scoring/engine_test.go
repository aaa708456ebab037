package scoring

import (
	"testing"

	"go.uber.org/zap"

	"github.com/jonjonssons/sacore-ai/internal/dictionary"
	"github.com/jonjonssons/sacore-ai/internal/profile"
	"github.com/jonjonssons/sacore-ai/internal/requirements"
)

func newEngineForTest() *Engine {
	dict := dictionary.Default()
	return NewEngine(dict, requirements.NewCategorizer(dict), zap.NewNop())
}

func reqList(descriptions ...string) []requirements.Requirement {
	reqs := make([]requirements.Requirement, 0, len(descriptions))
	for i, d := range descriptions {
		reqs = append(reqs, requirements.Requirement{
			ID:          string(rune('a' + i)),
			Description: d,
			Score:       1,
		})
	}
	return reqs
}

func TestScoreSearchedLocationWithUnknownProfileLocation(t *testing.T) {
	t.Parallel()

	e := newEngineForTest()

	p := &profile.Profile{
		Name:    "Anna Karlsson",
		Title:   "Account Executive",
		Company: "Klarna",
		Snippet: "Account Executive at Klarna AB.",
	}

	result := e.Score(p, reqList("Stockholm", "Account Executive"))

	// The query already restricted by place; an unknown profile location
	// does not contradict it, so the location category still counts.
	if result.Score != 2 {
		t.Fatalf("expected score 2, got %d", result.Score)
	}
	if len(result.Matched) != 1 || result.Matched[0] != "Account Executive" {
		t.Fatalf("unexpected matched list: %v", result.Matched)
	}
	if len(result.Unmatched) != 1 || result.Unmatched[0] != "Stockholm" {
		t.Fatalf("unexpected unmatched list: %v", result.Unmatched)
	}
	if !result.Categories.Location || !result.Categories.Title || result.Categories.Industry {
		t.Fatalf("unexpected category set: %+v", result.Categories)
	}
}

func TestScoreContradictingLocationGetsNoCredit(t *testing.T) {
	t.Parallel()

	e := newEngineForTest()

	p := &profile.Profile{
		Name:     "Anna Karlsson",
		Title:    "Account Executive",
		Location: "Oslo",
	}

	result := e.Score(p, reqList("Stockholm", "Account Executive"))
	if result.Score != 1 {
		t.Fatalf("expected score 1, got %d", result.Score)
	}
}

func TestScoreMatchedLocationField(t *testing.T) {
	t.Parallel()

	e := newEngineForTest()

	p := &profile.Profile{
		Name:     "Anna Karlsson",
		Title:    "Account Executive",
		Location: "Stockholm, Sweden",
	}

	result := e.Score(p, reqList("Stockholm", "Account Executive"))
	if result.Score != 2 {
		t.Fatalf("expected score 2, got %d", result.Score)
	}
	if len(result.Matched) != 2 {
		t.Fatalf("expected both terms matched: %v", result.Matched)
	}
}

func TestScoreBounds(t *testing.T) {
	t.Parallel()

	e := newEngineForTest()

	p := &profile.Profile{
		Name:     "Anna Karlsson",
		Title:    "Account Executive",
		Company:  "Klarna",
		Location: "Stockholm, Sweden",
		Snippet:  "SaaS sales at Klarna",
	}

	result := e.Score(p, reqList("Stockholm", "Account Executive", "SaaS"))
	if result.Score != 3 {
		t.Fatalf("expected full score 3, got %d", result.Score)
	}

	empty := e.Score(&profile.Profile{}, reqList("Stockholm", "Account Executive", "SaaS"))
	if empty.Score < 0 || empty.Score > 3 {
		t.Fatalf("score out of range: %d", empty.Score)
	}
}

func TestScoreEmptyRequirements(t *testing.T) {
	t.Parallel()

	e := newEngineForTest()

	result := e.Score(&profile.Profile{Name: "Anna Karlsson"}, nil)
	if result.Score != 0 {
		t.Fatalf("expected score 0, got %d", result.Score)
	}
	if len(result.Matched) != 0 || len(result.Unmatched) != 0 {
		t.Fatalf("expected empty explanation lists: %+v", result)
	}
	if e.MaxScore(nil) != 0 {
		t.Fatalf("expected max score 0 with no requirements")
	}
}

func TestScoreSkipsInactiveRequirements(t *testing.T) {
	t.Parallel()

	e := newEngineForTest()

	reqs := []requirements.Requirement{
		{ID: "1", Description: "Account Executive", Score: 0},
		{ID: "2", Description: "Stockholm", Score: 1},
	}

	p := &profile.Profile{Title: "Account Executive", Location: "Stockholm"}
	result := e.Score(p, reqs)

	if len(result.Matched)+len(result.Unmatched) != 1 {
		t.Fatalf("inactive requirement must not appear anywhere: %+v", result)
	}
	if result.Categories.Title {
		t.Fatalf("inactive requirement must not mark its category")
	}
}

func TestGenericTermMarksAllCategories(t *testing.T) {
	t.Parallel()

	e := newEngineForTest()

	set := e.CategoriesInSearch(reqList("closing enterprise deals"))
	if !set.Location || !set.Title || !set.Industry {
		t.Fatalf("generic term must mark all categories: %+v", set)
	}
	if e.MaxScore(reqList("closing enterprise deals")) != 3 {
		t.Fatalf("expected max score 3 for generic search")
	}
}

func TestGenericTermTalliesByMatchedField(t *testing.T) {
	t.Parallel()

	e := newEngineForTest()

	p := &profile.Profile{Title: "Sales Ninja"}
	result := e.Score(p, reqList("Ninja"))

	if len(result.Matched) != 1 {
		t.Fatalf("expected term to match in title: %v", result.Matched)
	}
	if result.Score != 1 {
		t.Fatalf("expected title category credit, got score %d", result.Score)
	}
}

func TestSpecialMatchRules(t *testing.T) {
	t.Parallel()

	e := newEngineForTest()

	t.Run("saas via whitelisted company", func(t *testing.T) {
		p := &profile.Profile{Company: "Klarna"}
		result := e.Score(p, reqList("SaaS"))
		if len(result.Matched) != 1 {
			t.Fatalf("expected saas special rule to match: %+v", result)
		}
		if result.Score != 1 {
			t.Fatalf("expected industry credit, got %d", result.Score)
		}
	})

	t.Run("sales synonym via title", func(t *testing.T) {
		p := &profile.Profile{Title: "Säljare"}
		result := e.Score(p, reqList("försäljning"))
		if len(result.Matched) != 1 {
			t.Fatalf("expected sales special rule to match: %+v", result)
		}
	})

	t.Run("account executive variants", func(t *testing.T) {
		p := &profile.Profile{Title: "Enterprise AE"}
		result := e.Score(p, reqList("AE"))
		if len(result.Matched) != 1 {
			t.Fatalf("expected AE variant to match: %+v", result)
		}
	})
}

func TestAddingSatisfiedTermNeverLowersScore(t *testing.T) {
	t.Parallel()

	e := newEngineForTest()

	p := &profile.Profile{
		Name:     "Anna Karlsson",
		Title:    "Account Executive",
		Company:  "Klarna",
		Location: "Stockholm, Sweden",
		Snippet:  "SaaS sales at Klarna",
	}

	reqs := reqList("Account Executive")
	prev := e.Score(p, reqs).Score

	for _, term := range []string{"Stockholm", "SaaS", "Klarna", "sales"} {
		reqs = append(reqs, requirements.Requirement{ID: term, Description: term, Score: 1})
		result := e.Score(p, reqs)

		matched := false
		for _, m := range result.Matched {
			if m == term {
				matched = true
			}
		}
		if !matched {
			t.Fatalf("term %q must be satisfied by the profile: %v", term, result.Matched)
		}
		if result.Score < prev {
			t.Fatalf("adding satisfied term %q lowered the score: %d -> %d", term, prev, result.Score)
		}
		prev = result.Score
	}
}

func TestFirstLocationRequirementIsAuthoritative(t *testing.T) {
	t.Parallel()

	e := newEngineForTest()

	// Location unknown: the first location term grants the category
	// credit, later location terms do not change the outcome.
	p := &profile.Profile{Title: "Account Executive"}

	single := e.Score(p, reqList("Stockholm", "Account Executive"))
	double := e.Score(p, reqList("Stockholm", "Account Executive", "Oslo"))

	if single.Score != double.Score {
		t.Fatalf("extra location terms must not change the credit: %d vs %d", single.Score, double.Score)
	}
	if !double.Categories.Location {
		t.Fatalf("location category must be present: %+v", double.Categories)
	}
}

func TestMaxScoreOverride(t *testing.T) {
	t.Parallel()

	e := newEngineForTest()
	reqs := reqList("Stockholm", "Account Executive", "SaaS")

	if e.MaxScore(reqs) != 3 {
		t.Fatalf("expected derived max 3")
	}

	e.SetMaxScoreOverride(2)
	if e.MaxScore(reqs) != 2 {
		t.Fatalf("expected override to lower the ceiling")
	}

	e.SetMaxScoreOverride(7)
	if e.MaxScore(reqs) != 3 {
		t.Fatalf("out-of-range override must clear")
	}
}

func TestScoreAllReplacesMetadataWholesale(t *testing.T) {
	t.Parallel()

	e := newEngineForTest()
	reqs := reqList("Stockholm", "Account Executive")

	p := &profile.Profile{
		Title: "Account Executive",
		Metadata: profile.Metadata{
			MatchedRequirements: []string{"stale entry"},
		},
		Score: 99,
	}
	profiles := &profile.Profiles{Items: []*profile.Profile{p}}

	e.ScoreAll(profiles, reqs)
	first := *p

	e.ScoreAll(profiles, reqs)

	if p.Score != first.Score {
		t.Fatalf("rescoring must be idempotent: %d vs %d", p.Score, first.Score)
	}
	for _, m := range p.Metadata.MatchedRequirements {
		if m == "stale entry" {
			t.Fatalf("stale metadata must be replaced, not merged")
		}
	}
}
