package lsp

import (
	"strings"
	"testing"
)

func TestHoverTargets(t *testing.T) {
	src := strings.Join([]string{
		"page {",
		"  card \"Stats\" gap=4 {",
		"    badge \"New\" variant=success",
		"  }",
		"}",
		"",
	}, "\n")
	file := newTestFile(src)

	tests := []struct {
		name     string
		word     string
		delta    int
		contains []string
	}{
		{
			name:  "component",
			word:  "card",
			delta: 1,
			contains: []string{
				"**card** _(Container)_",
				"Card container with optional title",
				"```wireweave\ncard \"Settings\" p=4 shadow=md { ... }\n```",
				"Attributes: p, px",
				"shadow",
			},
		},
		{
			name:     "number attribute",
			word:     "gap",
			delta:    0,
			contains: []string{"**gap** _(attribute)_", "`Type: number`", "Example: `gap=4`"},
		},
		{
			name:     "enum attribute",
			word:     "variant",
			delta:    3,
			contains: []string{"`Values: default | primary | secondary | success | warning | danger | info`"},
		},
		{
			name:     "value keyword",
			word:     "success",
			delta:    len("success"),
			contains: []string{"**success** _(value)_", "Used in: variant"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off := strings.Index(src, tt.word)
			if off < 0 {
				t.Fatalf("missing %q", tt.word)
			}
			h := buildHover(file, nil, positionForOffsetUTF16(src, off+tt.delta))
			if h == nil {
				t.Fatal("expected hover")
			}
			if h.Contents.Kind != "markdown" {
				t.Fatalf("unexpected kind %q", h.Contents.Kind)
			}
			for _, want := range tt.contains {
				if !strings.Contains(h.Contents.Value, want) {
					t.Fatalf("hover %q lacks %q", h.Contents.Value, want)
				}
			}
			wantStart := positionForOffsetUTF16(src, off)
			wantEnd := positionForOffsetUTF16(src, off+len(tt.word))
			if h.Range == nil || h.Range.Start != wantStart || h.Range.End != wantEnd {
				t.Fatalf("unexpected range %+v", h.Range)
			}
		})
	}
}

func TestHoverNothing(t *testing.T) {
	src := "page {\n  widget \"Stats\" = 4\n}\n"
	file := newTestFile(src)
	for _, target := range []string{"widget", "Stats", "=", "4"} {
		off := strings.Index(src, target)
		if h := buildHover(file, nil, positionForOffsetUTF16(src, off)); h != nil {
			t.Fatalf("%q: expected no hover, got %+v", target, h.Contents)
		}
	}
}

func TestHoverAfterWideRunes(t *testing.T) {
	src := "text \"\U0001F642\U0001F642\" bold"
	file := newTestFile(src)
	off := strings.Index(src, "bold")
	h := buildHover(file, nil, positionForOffsetUTF16(src, off+2))
	if h == nil {
		t.Fatal("expected hover for bold")
	}
	if h.Range.Start.Character != 12 || h.Range.End.Character != 16 {
		t.Fatalf("unexpected range %+v", *h.Range)
	}
}
