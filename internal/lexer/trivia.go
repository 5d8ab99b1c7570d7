package lexer

import (
	"unicode"
	"unicode/utf8"

	"wireweave/internal/diag"
	"wireweave/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - пробелы, '\t', '\r' и прочие Unicode-пробелы коалесцируются в один TriviaSpace
// - последовательные '\n' коалесцируются в один TriviaNewline
// - //... до \n -> TriviaLineComment
// - /* ... */ -> TriviaBlockComment (без вложенности; незакрытый репортится и обрезается на EOF)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case b == '\n':
			lx.cursor.BumpWhile(func(b byte) bool { return b == '\n' })
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		case lx.spaceWidth() > 0:
			for {
				w := lx.spaceWidth()
				if w == 0 {
					break
				}
				lx.cursor.Off += w
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		case b == '/' && lx.cursor.PeekAt(1) == '/':
			lx.cursor.BumpWhile(func(b byte) bool { return b != '\n' })
			lx.pushTrivia(token.TriviaLineComment, start)
			continue
		case b == '/' && lx.cursor.PeekAt(1) == '*':
			lx.scanBlockComment(start)
			continue
		}
		// нет больше trivia
		break
	}
}

func (lx *Lexer) scanBlockComment(start Mark) {
	lx.cursor.Bump()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.pushTrivia(token.TriviaBlockComment, start)
			return
		}
		lx.cursor.Bump()
	}
	tv := lx.pushTrivia(token.TriviaBlockComment, start)
	lx.errLex(diag.LexUnterminatedComment, tv.Span, "unterminated block comment")
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) token.Trivia {
	sp := lx.cursor.SpanFrom(start)
	tv := token.Trivia{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	lx.hold = append(lx.hold, tv)
	return tv
}

// spaceWidth возвращает ширину пробельной руны под курсором (кроме '\n'), иначе 0.
func (lx *Lexer) spaceWidth() uint32 {
	if lx.cursor.EOF() {
		return 0
	}
	b := lx.cursor.Peek()
	if b == '\n' {
		return 0
	}
	if b < utf8.RuneSelf {
		if unicode.IsSpace(rune(b)) {
			return 1
		}
		return 0
	}
	r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	if r == '\uFEFF' || (r != '\u0085' && unicode.IsSpace(r)) {
		return uint32(size) // #nosec G115 -- size <= utf8.UTFMax
	}
	return 0
}
