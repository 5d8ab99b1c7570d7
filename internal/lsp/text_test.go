package lsp

import "testing"

func TestApplyChanges(t *testing.T) {
	rng := func(sl, sc, el, ec int) *lspRange {
		return &lspRange{Start: position{Line: sl, Character: sc}, End: position{Line: el, Character: ec}}
	}
	tests := []struct {
		name    string
		text    string
		changes []textDocumentContentChangeEvent
		want    string
	}{
		{
			name:    "insert",
			text:    "page {\n}\n",
			changes: []textDocumentContentChangeEvent{{Range: rng(0, 6, 0, 6), Text: "\n  text \"hi\""}},
			want:    "page {\n  text \"hi\"\n}\n",
		},
		{
			name:    "replace after emoji",
			text:    "text \"🙂\" bold",
			changes: []textDocumentContentChangeEvent{{Range: rng(0, 10, 0, 14), Text: "muted"}},
			want:    "text \"🙂\" muted",
		},
		{
			name: "sequential edits",
			text: "abc",
			changes: []textDocumentContentChangeEvent{
				{Range: rng(0, 0, 0, 1), Text: "x"},
				{Range: rng(0, 3, 0, 3), Text: "!"},
			},
			want: "xbc!",
		},
		{
			name:    "full replace",
			text:    "old",
			changes: []textDocumentContentChangeEvent{{Text: "new"}},
			want:    "new",
		},
		{
			name:    "range past end",
			text:    "ab",
			changes: []textDocumentContentChangeEvent{{Range: rng(3, 0, 4, 0), Text: "c"}},
			want:    "abc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applyChanges(tt.text, tt.changes); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
