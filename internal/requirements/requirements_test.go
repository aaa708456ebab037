package requirements

import (
	"testing"

	"github.com/jonjonssons/sacore-ai/internal/dictionary"
)

func TestActive(t *testing.T) {
	t.Parallel()

	reqs := []Requirement{
		{ID: "1", Description: "Stockholm", Score: 1},
		{ID: "2", Description: "Account Executive", Score: 0},
		{ID: "3", Description: "   ", Score: 2},
		{ID: "4", Description: "SaaS", Score: 0.5},
	}

	active := Active(reqs)
	if len(active) != 2 {
		t.Fatalf("expected 2 active requirements, got %d", len(active))
	}
	if active[0].ID != "1" || active[1].ID != "4" {
		t.Fatalf("active order must follow input order: %+v", active)
	}
}

func TestCategorySet(t *testing.T) {
	t.Parallel()

	var set CategorySet
	if set.Any() || set.Count() != 0 {
		t.Fatalf("zero value must be empty")
	}

	set.Mark(CategoryLocation)
	set.Mark(CategoryTitles)
	set.Mark(CategorySkill) // no flag of its own
	set.Mark(CategoryOther)

	if !set.Location || !set.Title || set.Industry {
		t.Fatalf("unexpected flags: %+v", set)
	}
	if set.Count() != 2 {
		t.Fatalf("expected count 2, got %d", set.Count())
	}
}

func TestFirstLocation(t *testing.T) {
	t.Parallel()

	categorize := NewCategorizer(dictionary.Default()).Categorize

	reqs := []Requirement{
		{Description: "Account Executive", Score: 1},
		{Description: "Oslo", Score: 0}, // inactive, skipped
		{Description: "Stockholm", Score: 1},
		{Description: "Malmö", Score: 1},
	}

	if got := FirstLocation(reqs, categorize); got != "Stockholm" {
		t.Fatalf("expected first active location, got %q", got)
	}

	none := []Requirement{{Description: "Account Executive", Score: 1}}
	if got := FirstLocation(none, categorize); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}
