package source

import (
	"unicode/utf8"
)

// utf16Units returns how many UTF-16 code units encode content.
// Invalid bytes count as one unit each (they surface as U+FFFD).
func utf16Units(content []byte) uint32 {
	var units uint32
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
		i += size
	}
	return units
}

// UTF16Offset converts a byte offset into a count of UTF-16 code units
// from the start of the file. Offsets in the middle of a rune round down.
func (f *File) UTF16Offset(off uint32) uint32 {
	if size := f.Len(); off > size {
		off = size
	}
	return utf16Units(f.Content[:floorRune(f.Content, off)])
}

// UTF16Position converts a byte offset into a zero-based line and a
// zero-based UTF-16 column, the encoding used by LSP and browser editors.
func (f *File) UTF16Position(off uint32) (line, char uint32) {
	lc := f.Position(off)
	start := f.LineStart(lc.Line)
	end := floorRune(f.Content, start+lc.Col-1)
	if end < start {
		end = start
	}
	return lc.Line - 1, utf16Units(f.Content[start:end])
}

// OffsetForUTF16 converts a zero-based line and UTF-16 column back to a byte
// offset. Lines past the end map to the content length; columns past the end
// of the line map to the line terminator. A column that falls inside a
// surrogate pair resolves to the start of that rune.
func (f *File) OffsetForUTF16(line, char uint32) uint32 {
	if line+1 > f.LineCount() {
		return f.Len()
	}
	start, end := f.LineStart(line+1), f.LineEnd(line+1)
	var units uint32
	off := start
	for off < end {
		r, size := utf8.DecodeRune(f.Content[off:end])
		need := uint32(1)
		if r > 0xFFFF {
			need = 2
		}
		if units+need > char {
			break
		}
		units += need
		off += uint32(size) // #nosec G115 -- size <= utf8.UTFMax
	}
	return off
}

// floorRune moves off back to the first byte of the rune containing it.
func floorRune(content []byte, off uint32) uint32 {
	for off > 0 && int(off) < len(content) && !utf8.RuneStart(content[off]) {
		off--
	}
	return off
}
