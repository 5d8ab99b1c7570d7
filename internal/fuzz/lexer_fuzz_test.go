package fuzztests

import (
	"testing"

	"wireweave/internal/diag"
	"wireweave/internal/lexer"
	"wireweave/internal/source"
	"wireweave/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.ww", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		tokens := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if err := testkit.CheckTokenInvariants(tokens, file); err != nil {
			t.Fatalf("token invariants: %v", err)
		}
		if err := testkit.CheckDiagnosticSpans(bag.Items(), file); err != nil {
			t.Fatalf("lexer diagnostics: %v", err)
		}
		// сопоставление скобок не должно паниковать
		_ = lexer.MatchBraces(tokens)
	})
}
