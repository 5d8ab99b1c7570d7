package lexer

import (
	"wireweave/internal/registry"
	"wireweave/internal/token"
)

// Class is the highlighting class of a token, as an editor grammar would assign it.
type Class uint8

const (
	ClassInvalid Class = iota
	ClassKeyword
	ClassType
	ClassAttribute
	ClassValue
	ClassIdentifier
	ClassString
	ClassNumber
	ClassOperator
	ClassBracket
	ClassDelimiter
)

var classNames = [...]string{
	ClassInvalid:    "invalid",
	ClassKeyword:    "keyword",
	ClassType:       "type",
	ClassAttribute:  "attribute",
	ClassValue:      "value",
	ClassIdentifier: "identifier",
	ClassString:     "string",
	ClassNumber:     "number",
	ClassOperator:   "operator",
	ClassBracket:    "bracket",
	ClassDelimiter:  "delimiter",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "class(?)"
}

func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// layoutKeywords подсвечиваются как keyword, остальные компоненты как type.
var layoutKeywords = map[string]struct{}{
	"page": {}, "header": {}, "footer": {}, "main": {}, "sidebar": {}, "nav": {},
	"row": {}, "col": {}, "card": {}, "modal": {}, "table": {}, "form": {}, "tabs": {},
}

// Classify assigns a highlighting class to tok. Identifiers are matched
// exactly (case-sensitive) in priority order: layout keyword, component,
// attribute, value keyword.
func Classify(tok token.Token, reg *registry.Registry) Class {
	if reg == nil {
		reg = registry.Default()
	}
	switch tok.Kind {
	case token.Ident:
		return classifyIdent(tok.Text, reg)
	case token.KwTrue, token.KwFalse:
		return ClassValue
	case token.StringLit:
		return ClassString
	case token.NumberLit:
		return ClassNumber
	case token.Assign, token.Symbol:
		return ClassOperator
	case token.LBrace, token.RBrace, token.LParen, token.RParen, token.LBracket, token.RBracket:
		return ClassBracket
	case token.Comma, token.Colon:
		return ClassDelimiter
	}
	return ClassInvalid
}

func classifyIdent(word string, reg *registry.Registry) Class {
	if _, ok := layoutKeywords[word]; ok {
		return ClassKeyword
	}
	if c, ok := reg.LookupComponent(word); ok && c.Name == word {
		return ClassType
	}
	if reg.IsAttribute(word) {
		return ClassAttribute
	}
	if registry.IsValueKeyword(word) {
		return ClassValue
	}
	return ClassIdentifier
}
