package extract

import "testing"

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "empty",
			input:  "",
			expect: "",
		},
		{
			name:   "locale subdomain collapses to www",
			input:  "https://se.linkedin.com/in/anna-karlsson-123/",
			expect: "https://www.linkedin.com/in/anna-karlsson-123",
		},
		{
			name:   "http upgrades to https",
			input:  "http://www.linkedin.com/in/erik",
			expect: "https://www.linkedin.com/in/erik",
		},
		{
			name:   "tracking parameters stripped",
			input:  "https://www.linkedin.com/in/erik?utm_source=share&trk=public_profile",
			expect: "https://www.linkedin.com/in/erik",
		},
		{
			name:   "meaningful parameters survive",
			input:  "https://example.com/profile?page=2&utm_medium=social",
			expect: "https://example.com/profile?page=2",
		},
		{
			name:   "fragment dropped",
			input:  "https://example.com/profile#experience",
			expect: "https://example.com/profile",
		},
		{
			name:   "business subdomain untouched",
			input:  "https://business.linkedin.com/talent",
			expect: "https://business.linkedin.com/talent",
		},
		{
			name:   "hostless input trimmed only",
			input:  "not a url/",
			expect: "not a url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NormalizeURL(tt.input)
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
			if again := NormalizeURL(got); again != got {
				t.Fatalf("not idempotent: %q became %q", got, again)
			}
		})
	}
}

func TestStripSiteSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		expect string
	}{
		{"Anna Karlsson | LinkedIn", "Anna Karlsson"},
		{"Bob Smith | LinkedIn Sverige", "Bob Smith"},
		{"Anna Karlsson - Account Executive - LinkedIn", "Anna Karlsson - Account Executive"},
		{"Anna Karlsson - Acme Corp", "Anna Karlsson - Acme Corp"},
		{"No separators here", "No separators here"},
	}

	for _, tt := range tests {
		if got := StripSiteSuffix(tt.input); got != tt.expect {
			t.Fatalf("StripSiteSuffix(%q): expected %q, got %q", tt.input, tt.expect, got)
		}
	}
}
