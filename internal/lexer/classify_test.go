package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"wireweave/internal/lexer"
	"wireweave/internal/registry"
)

func TestClassify(t *testing.T) {
	file := createVirtual(`page { button "Go" primary size=base gap=3 Button foo true }`)
	toks := lexer.Tokenize(file, lexer.Options{})
	reg := registry.Default()

	got := make([]string, 0, len(toks))
	for _, tok := range toks[:len(toks)-1] {
		got = append(got, tok.Text+":"+lexer.Classify(tok, reg).String())
	}
	want := []string{
		"page:keyword",
		"{:bracket",
		"button:type",
		`"Go":string`,
		"primary:attribute",
		"size:attribute",
		"=:operator",
		"base:value",
		"gap:attribute",
		"=:operator",
		"3:number",
		"Button:identifier",
		"foo:identifier",
		"true:value",
		"}:bracket",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("classes mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchBraces(t *testing.T) {
	input := "} page {\n  card {\n    text \"{\" // }\n  }\n  row {\n"
	pairs := lexer.MatchBraces(lexer.Tokenize(createVirtual(input), lexer.Options{}))
	want := []lexer.BracePair{{Open: 16, Close: 38}}
	if diff := cmp.Diff(want, pairs); diff != "" {
		t.Errorf("pairs mismatch (-want +got):\n%s", diff)
	}
}
