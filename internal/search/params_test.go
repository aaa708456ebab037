package search

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		params *Params
		want   string
	}{
		{
			name:   "single word terms",
			params: &Params{Terms: []string{"Stockholm", "SaaS"}},
			want:   "Stockholm SaaS",
		},
		{
			name:   "multi word terms get quoted",
			params: &Params{Terms: []string{"Account Executive", "Stockholm"}},
			want:   `"Account Executive" Stockholm`,
		},
		{
			name: "sites become an OR group",
			params: &Params{
				Terms: []string{"Stockholm"},
				Sites: []string{"linkedin.com/in", "se.linkedin.com/in"},
			},
			want: "Stockholm site:linkedin.com/in OR site:se.linkedin.com/in",
		},
		{
			name:   "blank terms are skipped",
			params: &Params{Terms: []string{"", "  ", "Stockholm"}},
			want:   "Stockholm",
		},
		{
			name:   "empty params",
			params: &Params{},
			want:   "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.params.Query(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuildParams(t *testing.T) {
	t.Parallel()

	c := New(context.Background(), zap.NewNop(), "secret", "engine-1")

	q := c.buildParams(&Params{Terms: []string{"Stockholm"}, Language: "lang_sv"}, 1)
	if q.Get("key") != "secret" || q.Get("cx") != "engine-1" {
		t.Fatalf("credentials missing from query: %v", q)
	}
	if q.Get("q") != "Stockholm" || q.Get("num") != "10" {
		t.Fatalf("unexpected query values: %v", q)
	}
	if q.Get("lr") != "lang_sv" {
		t.Fatalf("language hint missing: %v", q)
	}
	if q.Get("start") != "" {
		t.Fatalf("first page must not carry a start offset: %v", q)
	}

	q = c.buildParams(&Params{Terms: []string{"Stockholm"}}, 11)
	if q.Get("start") != "11" {
		t.Fatalf("expected start offset, got %v", q)
	}
	if q.Get("lr") != "" {
		t.Fatalf("unset language must be omitted: %v", q)
	}
}
