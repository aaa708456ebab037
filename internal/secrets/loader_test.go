package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	keyFile := filepath.Join(dir, "key")
	if err := os.WriteFile(keyFile, []byte(" file-secret \n"), 0o600); err != nil {
		t.Fatalf("writing key file: %v", err)
	}
	emptyFile := filepath.Join(dir, "empty")
	if err := os.WriteFile(emptyFile, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("writing empty file: %v", err)
	}

	cases := []struct {
		name    string
		src     Source
		want    string
		wantErr string
	}{
		{
			name: "inline value",
			src:  Source{Name: "api key", Value: " inline-secret "},
			want: "inline-secret",
		},
		{
			name: "file takes precedence",
			src:  Source{Name: "api key", Value: "inline-secret", File: keyFile},
			want: "file-secret",
		},
		{
			name:    "missing file",
			src:     Source{Name: "api key", File: filepath.Join(dir, "absent")},
			wantErr: "reading api key",
		},
		{
			name:    "empty file",
			src:     Source{Name: "api key", File: emptyFile},
			wantErr: "is empty",
		},
		{
			name:    "nothing configured",
			src:     Source{Name: "api key"},
			wantErr: "api key is not configured",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Load(tc.src)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
