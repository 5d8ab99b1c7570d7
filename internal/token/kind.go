package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// NumberLit represents an integer or decimal literal.
	NumberLit
	// StringLit represents a double-quoted string literal.
	StringLit

	Assign   // =
	Comma    // ,
	Colon    // :
	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]
	// Symbol is any other run of operator characters (for example the '-' in top-left).
	Symbol
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	KwTrue:    "KwTrue",
	KwFalse:   "KwFalse",
	NumberLit: "NumberLit",
	StringLit: "StringLit",
	Assign:    "Assign",
	Comma:     "Comma",
	Colon:     "Colon",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	Symbol:    "Symbol",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
