package lint

import (
	"unicode"
	"unicode/utf8"
)

// isWordByte matches the ASCII identifier class [A-Za-z0-9_].
func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// isSpace is the whitespace class used by every check: the Unicode White_Space
// characters plus U+FEFF, without U+0085.
func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// spaceAt reports whether a whitespace rune starts at line[i], and its width.
func spaceAt(line string, i int) (int, bool) {
	if i >= len(line) {
		return 0, false
	}
	if b := line[i]; b < utf8.RuneSelf {
		return 1, isSpace(rune(b))
	}
	r, size := utf8.DecodeRuneInString(line[i:])
	return size, isSpace(r)
}

// skipSpace returns the index of the first non-whitespace rune at or after i.
func skipSpace(line string, i int) int {
	for i < len(line) {
		size, ok := spaceAt(line, i)
		if !ok {
			break
		}
		i += size
	}
	return i
}

// trimSpaceRight returns the end of s with trailing whitespace removed.
func trimSpaceRight(s string) int {
	end := len(s)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:end])
		if !isSpace(r) {
			break
		}
		end -= size
	}
	return end
}

// scanWord returns the end of the identifier run starting at i (i when there is none).
func scanWord(line string, i int) int {
	for i < len(line) && isWordByte(line[i]) {
		i++
	}
	return i
}

// wordStartBefore walks back from end over identifier bytes.
func wordStartBefore(line string, end int) int {
	for end > 0 && isWordByte(line[end-1]) {
		end--
	}
	return end
}

func isBlank(s string) bool {
	return skipSpace(s, 0) == len(s)
}

// trimSpace strips leading and trailing whitespace.
func trimSpace(s string) string {
	start := skipSpace(s, 0)
	return s[start:max(start, trimSpaceRight(s))]
}

// EnclosingComponent finds the identifier a `{` at the end of prefix belongs to:
// a trailing `ident ("quoted")?` optionally followed by whitespace.
// The validator names unclosed braces with it and completion picks the
// parent component with it.
// The quoted part must be separated from the identifier by whitespace and
// contain no quotes.
func EnclosingComponent(prefix string) (string, bool) {
	end := trimSpaceRight(prefix)
	if end == 0 {
		return "", false
	}
	if isWordByte(prefix[end-1]) {
		start := wordStartBefore(prefix, end)
		return prefix[start:end], true
	}
	if prefix[end-1] != '"' {
		return "", false
	}
	open := -1
	for i := end - 2; i >= 0; i-- {
		if prefix[i] == '"' {
			open = i
			break
		}
	}
	if open < 0 {
		return "", false
	}
	wordEnd := trimSpaceRight(prefix[:open])
	if wordEnd == open || wordEnd == 0 || !isWordByte(prefix[wordEnd-1]) {
		return "", false
	}
	start := wordStartBefore(prefix, wordEnd)
	return prefix[start:wordEnd], true
}
