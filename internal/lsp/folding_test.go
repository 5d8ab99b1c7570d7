package lsp

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFoldingRangesBraces(t *testing.T) {
	src := strings.Join([]string{
		"page {",
		"  text \"\\u03c0 {\"",
		"  card {",
		"    button \"Go\"",
		"  }",
		"  row { col {} }",
		"}",
		"",
	}, "\n")
	got := buildFoldingRanges(newTestFile(src))
	want := []foldingRange{
		{StartLine: 0, EndLine: 6},
		{StartLine: 2, EndLine: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ranges mismatch (-want +got):\n%s", diff)
	}
}

func TestFoldingRangesComments(t *testing.T) {
	src := "/* header\n   notes */\npage {\n  // one line\n}\n"
	got := buildFoldingRanges(newTestFile(src))
	want := []foldingRange{
		{StartLine: 0, EndLine: 1, Kind: "comment"},
		{StartLine: 2, EndLine: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ranges mismatch (-want +got):\n%s", diff)
	}
}

func TestFoldingRangesUnbalanced(t *testing.T) {
	src := "page {\n  card {\n  }\n"
	got := buildFoldingRanges(newTestFile(src))
	want := []foldingRange{{StartLine: 1, EndLine: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ranges mismatch (-want +got):\n%s", diff)
	}
	if got := buildFoldingRanges(newTestFile("")); len(got) != 0 {
		t.Fatalf("empty document: %+v", got)
	}
}
