package lexer

import (
	"slices"

	"wireweave/internal/token"
)

// BracePair is a matched '{' '}' pair, by byte offsets of the braces.
type BracePair struct {
	Open  uint32
	Close uint32
}

// MatchBraces pairs brace tokens in order. Unmatched braces are skipped.
// Pairs are ordered by Open.
func MatchBraces(tokens []token.Token) []BracePair {
	var (
		stack []int
		out   []BracePair
	)
	for _, tok := range tokens {
		switch tok.Kind {
		case token.LBrace:
			stack = append(stack, len(out))
			out = append(out, BracePair{Open: tok.Span.Start})
		case token.RBrace:
			if len(stack) == 0 {
				continue
			}
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			out[idx].Close = tok.Span.Start
		}
	}
	// незакрытые скобки выбрасываем, сохраняя порядок
	matched := out[:0]
	for i, p := range out {
		if slices.Contains(stack, i) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}
