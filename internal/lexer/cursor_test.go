package lexer

import (
	"testing"

	"wireweave/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.wf", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Errorf("Peek = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("Bump = %q, want %q", got, want)
		}
	}

	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 {
		t.Errorf("Expected peek 0 at EOF, got %q", cursor.Peek())
	}
	if b := cursor.Bump(); b != 0 {
		t.Errorf("Expected bump 0 at EOF, got %q", b)
	}
}

func TestPeekAt(t *testing.T) {
	cursor := NewCursor(createFile("abc"))
	if got := cursor.PeekAt(1); got != 'b' {
		t.Errorf("PeekAt(1) = %q, want 'b'", got)
	}
	if got := cursor.PeekAt(3); got != 0 {
		t.Errorf("PeekAt(3) = %q, want 0", got)
	}
	cursor.Bump()
	cursor.Bump()
	if got := cursor.PeekAt(1); got != 0 {
		t.Errorf("PeekAt(1) near end = %q, want 0", got)
	}
}

func TestEatAndBumpWhile(t *testing.T) {
	cursor := NewCursor(createFile("   x=1"))
	if n := cursor.BumpWhile(func(b byte) bool { return b == ' ' }); n != 3 {
		t.Errorf("BumpWhile = %d, want 3", n)
	}
	if cursor.Eat('=') {
		t.Error("Eat('=') should fail on 'x'")
	}
	if !cursor.Eat('x') || !cursor.Eat('=') {
		t.Error("Eat should consume 'x' and '='")
	}
	if cursor.Off != 5 {
		t.Errorf("Off = %d, want 5", cursor.Off)
	}
}

// TestMarkAndReset проверяет сохранение и откат позиции
func TestMarkAndReset(t *testing.T) {
	file := createFile("hello")
	cursor := NewCursor(file)
	cursor.Bump()
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()

	sp := cursor.SpanFrom(m)
	if sp.Start != 1 || sp.End != 3 || sp.File != file.ID {
		t.Errorf("SpanFrom = %+v, want 1..3", sp)
	}
	cursor.Reset(m)
	if cursor.Peek() != 'e' {
		t.Errorf("after Reset Peek = %q, want 'e'", cursor.Peek())
	}
}

func TestEmptyFile(t *testing.T) {
	cursor := NewCursor(createFile(""))
	if !cursor.EOF() {
		t.Error("empty file must be at EOF")
	}
	if sp := cursor.SpanFrom(cursor.Mark()); !sp.Empty() {
		t.Errorf("span on empty file = %+v", sp)
	}
}
