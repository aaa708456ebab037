package extract

import (
	"testing"

	"github.com/jonjonssons/sacore-ai/internal/dictionary"
	"github.com/jonjonssons/sacore-ai/internal/search"
)

func TestLocationExtractorStrategies(t *testing.T) {
	t.Parallel()

	e := NewLocationExtractor(dictionary.Default())

	tests := []struct {
		name           string
		item           *search.Result
		expectLocation string
		expectSource   string
	}{
		{
			name:           "city country pair",
			item:           &search.Result{Snippet: "Based at HQ. Stockholm, Sweden. 500+ connections."},
			expectLocation: "Stockholm, Sweden",
			expectSource:   "comma_pattern",
		},
		{
			name:           "known city with noise tail",
			item:           &search.Result{Snippet: "Lives in Malmö, Fintechland these days"},
			expectLocation: "Malmö, Sweden",
			expectSource:   "comma_pattern",
		},
		{
			name:           "location phrase",
			item:           &search.Result{Snippet: "Sales professional based in Göteborg with focus on B2B"},
			expectLocation: "Göteborg, Sweden",
			expectSource:   "phrase_pattern",
		},
		{
			name:           "single known token",
			item:           &search.Result{Snippet: "Oslo sales professional with ten years of quota"},
			expectLocation: "Oslo",
			expectSource:   "single_token",
		},
		{
			name:           "unknown places never guessed",
			item:           &search.Result{Snippet: "Experienced seller working with enterprise clients"},
			expectLocation: "",
			expectSource:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			location, source := e.Extract(tt.item)
			if location != tt.expectLocation {
				t.Fatalf("expected location %q, got %q", tt.expectLocation, location)
			}
			if source != tt.expectSource {
				t.Fatalf("expected strategy %q, got %q", tt.expectSource, source)
			}
		})
	}
}

func TestLocationStandardize(t *testing.T) {
	t.Parallel()

	e := NewLocationExtractor(dictionary.Default())

	tests := []struct {
		input  string
		expect string
	}{
		{"Greater Stockholm", "Stockholm, Sweden"},
		{"Oslo Area", "Oslo"},
		{"Stor-Göteborg", "Göteborg, Sweden"},
		{"Malmö", "Malmö, Sweden"},
		{"Berlin", "Berlin"},
		{"London, United Kingdom", "London, United Kingdom"},
	}

	for _, tt := range tests {
		if got := e.standardize(tt.input); got != tt.expect {
			t.Fatalf("standardize(%q): expected %q, got %q", tt.input, tt.expect, got)
		}
	}
}
