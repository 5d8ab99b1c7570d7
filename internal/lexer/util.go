package lexer

import "strconv"

// ===== Классификаторы =====

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// isSymbolByte: операторные символы, кроме '=' (он всегда отдельный Assign)
func isSymbolByte(b byte) bool {
	switch b {
	case '>', '<', '!', '~', '?', '&', '|', '+', '-', '*', '/', '^', '%':
		return true
	}
	return false
}

func quoteByte(b byte) string {
	return strconv.QuoteRune(rune(b))
}

func quoteRune(r rune) string {
	return strconv.QuoteRune(r)
}
