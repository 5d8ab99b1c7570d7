package lsp

import (
	"path/filepath"
	"testing"
)

func TestURIRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "with space", "main.ww")
	uri := pathToURI(path)
	if got := uriToPath(uri); got != path {
		t.Fatalf("round trip: got %q, want %q", got, path)
	}
}

func TestCanonicalURI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.ww")
	want := pathToURI(path)
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"canonical", want, want},
		{"dot segment", pathToURI(dir) + "/./main.ww", want},
		{"untitled", "untitled:Untitled-1", "untitled:Untitled-1"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canonicalURI(tt.in); got != tt.want {
				t.Fatalf("canonicalURI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestURIToPathRejectsForeignScheme(t *testing.T) {
	if got := uriToPath("https://example.com/a.ww"); got != "" {
		t.Fatalf("expected empty path, got %q", got)
	}
}
