package token

import (
	"wireweave/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a number, boolean or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is punctuation or an operator.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Assign, Comma, Colon, LParen, RParen, LBrace, RBrace, LBracket, RBracket, Symbol:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsOpen reports whether the token opens a bracketed region.
func (t Token) IsOpen() bool {
	return t.Kind == LBrace || t.Kind == LBracket || t.Kind == LParen
}

// Closer returns the kind that closes an opening bracket, or Invalid.
func (k Kind) Closer() Kind {
	switch k {
	case LBrace:
		return RBrace
	case LBracket:
		return RBracket
	case LParen:
		return RParen
	}
	return Invalid
}
