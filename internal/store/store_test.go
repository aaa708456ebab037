package store

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/jonjonssons/sacore-ai/internal/profile"
	"github.com/jonjonssons/sacore-ai/internal/requirements"
)

func TestRequirementsRoundTrip(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir(), zaptest.NewLogger(t))

	reqs := []requirements.Requirement{
		{ID: "req-1", Description: "Stockholm", Score: 1, Category: requirements.CategoryLocation},
		{ID: "req-2", Description: "Account Executive", Score: 2.5},
	}

	if err := s.SaveRequirements(reqs); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := s.Requirements()
	if len(loaded) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(loaded))
	}
	if loaded[0].Description != "Stockholm" || loaded[0].Category != requirements.CategoryLocation {
		t.Fatalf("unexpected first requirement: %+v", loaded[0])
	}
	if loaded[1].Score != 2.5 {
		t.Fatalf("unexpected score: %v", loaded[1].Score)
	}
}

func TestAbsentRecordsYieldZeroValues(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir(), zaptest.NewLogger(t))

	if got := s.Requirements(); len(got) != 0 {
		t.Fatalf("expected empty requirements, got %v", got)
	}
	if got := s.CustomTitles(); len(got) != 0 {
		t.Fatalf("expected empty titles, got %v", got)
	}
	if got := s.Profiles(); got.Len() != 0 {
		t.Fatalf("expected empty profiles, got %d", got.Len())
	}
	if got := s.MaxScoreOverride(); got != -1 {
		t.Fatalf("expected -1 for absent override, got %d", got)
	}
}

func TestMalformedRecordsAreIgnored(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := New(dir, zaptest.NewLogger(t))

	for _, name := range []string{"requirements", "max_score", "profiles"} {
		if err := os.WriteFile(filepath.Join(dir, name+".json"), []byte("{not json"), 0o644); err != nil {
			t.Fatalf("writing corrupt record: %v", err)
		}
	}

	if got := s.Requirements(); len(got) != 0 {
		t.Fatalf("corrupt requirements must read as empty, got %v", got)
	}
	if got := s.MaxScoreOverride(); got != -1 {
		t.Fatalf("corrupt override must read as -1, got %d", got)
	}
	if got := s.Profiles(); got.Len() != 0 {
		t.Fatalf("corrupt profiles must read as empty, got %d", got.Len())
	}
}

func TestWeaklyTypedRead(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := New(dir, zaptest.NewLogger(t))

	// Hand-edited files with string numbers must still load.
	payload := `[{"id": "req-1", "description": "Stockholm", "score": "2"}]`
	if err := os.WriteFile(filepath.Join(dir, "requirements.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("writing record: %v", err)
	}

	loaded := s.Requirements()
	if len(loaded) != 1 || loaded[0].Score != 2 {
		t.Fatalf("expected weakly typed score decode, got %+v", loaded)
	}
}

func TestMaxScoreOverrideRoundTrip(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir(), zaptest.NewLogger(t))

	if err := s.SaveMaxScoreOverride(2); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := s.MaxScoreOverride(); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestProfilesRoundTrip(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir(), zaptest.NewLogger(t))

	p := &profile.Profiles{Items: []*profile.Profile{
		{ID: "a", Name: "Anna Karlsson", Score: 2, Metadata: profile.Metadata{
			MatchedRequirements: []string{"Account Executive"},
		}},
	}}

	if err := s.SaveProfiles(p); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := s.Profiles()
	if loaded.Len() != 1 {
		t.Fatalf("expected 1 profile, got %d", loaded.Len())
	}
	if loaded.Items[0].Name != "Anna Karlsson" || loaded.Items[0].Score != 2 {
		t.Fatalf("unexpected profile: %+v", loaded.Items[0])
	}
	if len(loaded.Items[0].Metadata.MatchedRequirements) != 1 {
		t.Fatalf("metadata must survive the round trip")
	}
}

func TestCustomTablesRoundTrip(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir(), zaptest.NewLogger(t))

	if err := s.SaveCustomTitles([]string{"growth hacker"}); err != nil {
		t.Fatalf("save titles: %v", err)
	}
	if err := s.SaveCustomIndustries([]string{"proptech"}); err != nil {
		t.Fatalf("save industries: %v", err)
	}

	if got := s.CustomTitles(); len(got) != 1 || got[0] != "growth hacker" {
		t.Fatalf("unexpected titles: %v", got)
	}
	if got := s.CustomIndustries(); len(got) != 1 || got[0] != "proptech" {
		t.Fatalf("unexpected industries: %v", got)
	}
}
