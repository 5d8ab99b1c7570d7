package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"wireweave/internal/lexer"
	"wireweave/internal/registry"
	"wireweave/internal/source"
	"wireweave/internal/token"
)

type TokenOutput struct {
	Kind    string      `json:"kind"`
	Class   string      `json:"class"`
	Text    string      `json:"text,omitempty"`
	Span    source.Span `json:"span"`
	Leading []string    `json:"leading,omitempty"`
}

func leadingKinds(tok token.Token) []string {
	if len(tok.Leading) == 0 {
		return nil
	}
	leading := make([]string, 0, len(tok.Leading))
	for _, trivia := range tok.Leading {
		leading = append(leading, trivia.Kind.String())
	}
	return leading
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, file *source.File, reg *registry.Registry) error {
	for i, tok := range tokens {
		startPos, endPos := file.Position(tok.Span.Start), file.Position(tok.Span.End)

		if _, err := fmt.Fprintf(w, "%3d: %-10s %-11s", i+1, tok.Kind.String(), lexer.Classify(tok, reg).String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if leading := leadingKinds(tok); len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, reg *registry.Registry) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:    tok.Kind.String(),
			Class:   lexer.Classify(tok, reg).String(),
			Text:    tok.Text,
			Span:    tok.Span,
			Leading: leadingKinds(tok),
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	return writeJSON(w, output)
}
