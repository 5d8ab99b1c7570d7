package diag

import (
	"fmt"
	"sort"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Структурные проверки документа
	LntInfo             Code = 1000
	LntDuplicateRoot    Code = 1001
	LntUnknownComponent Code = 1002
	LntUnknownAttribute Code = 1003
	LntUnmatchedBrace   Code = 1004
	LntUnclosedString   Code = 1005
	LntUnclosedBrace    Code = 1006
	LntMissingRoot      Code = 1007

	// Лексические (используются только токенайзером)
	LexInfo                Code = 2000
	LexUnknownChar         Code = 2001
	LexUnterminatedString  Code = 2002
	LexUnterminatedComment Code = 2003

	// I/O
	IOLoadFileError Code = 4001
	IOReadDirError  Code = 4002
	IOCacheError    Code = 4003

	// Конфигурация
	CfgInvalid Code = 5001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:            "Unknown error",
		LntInfo:                "Lint information",
		LntDuplicateRoot:       "Duplicate root component",
		LntUnknownComponent:    "Unknown component",
		LntUnknownAttribute:    "Unknown attribute",
		LntUnmatchedBrace:      "Unmatched closing brace",
		LntUnclosedString:      "Unclosed string",
		LntUnclosedBrace:       "Unclosed brace",
		LntMissingRoot:         "Missing root component",
		LexInfo:                "Lexical information",
		LexUnknownChar:         "Unknown character",
		LexUnterminatedString:  "Unterminated string literal",
		LexUnterminatedComment: "Unterminated block comment",
		IOLoadFileError:        "Failed to load file",
		IOReadDirError:         "Failed to read directory",
		IOCacheError:           "Lint cache failure",
		CfgInvalid:             "Invalid configuration",
	}

	// codeSlug is the kebab-case check name accepted by `[lint] disable`.
	codeSlug = map[Code]string{
		LntDuplicateRoot:    "duplicate-root",
		LntUnknownComponent: "unknown-component",
		LntUnknownAttribute: "unknown-attribute",
		LntUnmatchedBrace:   "unmatched-brace",
		LntUnclosedString:   "unclosed-string",
		LntUnclosedBrace:    "unclosed-brace",
		LntMissingRoot:      "missing-root",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LNT%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

// Slug returns the check name of a lint code, or "" for codes that cannot be disabled.
func (c Code) Slug() string {
	return codeSlug[c]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// CodeBySlug resolves a check name (as written in wireweave.toml) to its code.
func CodeBySlug(slug string) (Code, bool) {
	for c, s := range codeSlug {
		if s == slug {
			return c, true
		}
	}
	return UnknownCode, false
}

// CheckSlugs lists every check name in code order.
func CheckSlugs() []string {
	codes := make([]Code, 0, len(codeSlug))
	for c := range codeSlug {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = codeSlug[c]
	}
	return out
}
