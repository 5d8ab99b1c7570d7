// Package testkit holds structural checks shared by fuzz harnesses and tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"wireweave/internal/diag"
	"wireweave/internal/source"
	"wireweave/internal/token"
)

// CheckTokenInvariants validates a lexer result for sf:
// 1) the stream is non-empty and ends with a single EOF
// 2) every span belongs to sf and lies within its content
// 3) tokens do not overlap and appear in source order
// 4) leading trivia precede the token they are attached to
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		isLast := i == len(tokens)-1
		if tok.Kind == token.EOF && !isLast {
			return fmt.Errorf("EOF at index %d before the end of stream", i)
		}
		if isLast && tok.Kind != token.EOF {
			return fmt.Errorf("stream ends with %v, want EOF", tok.Kind)
		}
		if err := checkSpan(tok.Span, sf.ID, lenContent); err != nil {
			return fmt.Errorf("token %d (%v): %w", i, tok.Kind, err)
		}
		for _, tr := range tok.Leading {
			if err := checkSpan(tr.Span, sf.ID, lenContent); err != nil {
				return fmt.Errorf("trivia of token %d: %w", i, err)
			}
			if tr.Span.Start < prevEnd || tr.Span.End > tok.Span.Start {
				return fmt.Errorf("trivia %v of token %d is outside the gap [%d, %d)", tr.Span, i, prevEnd, tok.Span.Start)
			}
		}
		if tok.Span.Start < prevEnd {
			return fmt.Errorf("token %d span %v overlaps previous end %d", i, tok.Span, prevEnd)
		}
		prevEnd = tok.Span.End
	}
	return nil
}

// CheckDiagnosticSpans ensures every primary and note span points into sf.
func CheckDiagnosticSpans(diags []diag.Diagnostic, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	for i, d := range diags {
		if d.Message == "" {
			return fmt.Errorf("diagnostic %d (%s) has empty message", i, d.Code.ID())
		}
		if err := checkSpan(d.Primary, sf.ID, lenContent); err != nil {
			return fmt.Errorf("diagnostic %d (%s): %w", i, d.Code.ID(), err)
		}
		for _, n := range d.Notes {
			if err := checkSpan(n.Span, sf.ID, lenContent); err != nil {
				return fmt.Errorf("note of diagnostic %d: %w", i, err)
			}
		}
	}
	return nil
}

func checkSpan(sp source.Span, file source.FileID, lenContent uint32) error {
	if sp.File != file {
		return fmt.Errorf("span file mismatch: got=%d want=%d", sp.File, file)
	}
	if sp.End < sp.Start {
		return fmt.Errorf("inverted span %v", sp)
	}
	if sp.End > lenContent {
		return fmt.Errorf("span end beyond content: %d > %d", sp.End, lenContent)
	}
	return nil
}
