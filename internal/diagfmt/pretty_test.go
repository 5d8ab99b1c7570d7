package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"wireweave/internal/diag"
	"wireweave/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()

	content := []byte("page {\n  text \"unterminated\n}\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.wf", content)

	// Устанавливаем базовую директорию для relative paths
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.LntUnclosedString,
		source.Span{File: fileID, Start: 7, End: 26},
		"Unclosed string",
	))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{name: "Absolute path", mode: PathModeAbsolute, contains: "/home/user/project/src/test.wf:2:1"},
		{name: "Relative path", mode: PathModeRelative, contains: "src/test.wf:2:1"},
		{name: "Basename only", mode: PathModeBasename, contains: "test.wf:2:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR") {
				t.Error("Expected ERROR in output")
			}
			if !strings.Contains(output, "LNT1005") {
				t.Error("Expected LNT1005 code in output")
			}
			if !strings.Contains(output, "Unclosed string") {
				t.Error("Expected error message in output")
			}
		})
	}
}

// TestPathModeAuto проверяет авто-режим выбора пути
func TestPathModeAuto(t *testing.T) {
	fs := source.NewFileSet()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "Short path - as is", path: "test.wf", expected: "test.wf:1:"},
		{name: "Long absolute path - basename", path: "/very/long/absolute/path/to/some/nested/directory/file.wf", expected: "\nfile.wf:1:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileID := fs.AddVirtual(tt.path, []byte("page { foo }\n"))

			bag := diag.NewBag(10)
			bag.Add(diag.New(diag.SevWarning, diag.LntUnknownComponent, source.Span{File: fileID, Start: 7, End: 10}, "Test warning"))

			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAuto})
			output := "\n" + buf.String()

			if !strings.Contains(output, tt.expected) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.expected, output)
			}
		})
	}
}

func TestPrettySnippetAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("caret.wf", []byte("page {\n\tfoo bar=1\n}\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.New(diag.SevWarning, diag.LntUnknownAttribute, source.Span{File: fileID, Start: 12, End: 15}, `Unknown attribute: "bar"`))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	want := "caret.wf:2:6: WARNING LNT1003: Unknown attribute: \"bar\"\n" +
		" 2 |     foo bar=1\n" +
		"   |         ^~~\n"
	if got := buf.String(); got != want {
		t.Errorf("pretty output mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	fs := source.NewFileSet()
	content := "text \"日本\" zz=1"
	fileID := fs.AddVirtual("wide.wf", []byte(content))
	start := uint32(strings.Index(content, "zz"))

	bag := diag.NewBag(4)
	bag.Add(diag.New(diag.SevWarning, diag.LntUnknownAttribute, source.Span{File: fileID, Start: start, End: start + 2}, "x"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	// "text "日本" " занимает 12 колонок на экране
	if want := "   | " + strings.Repeat(" ", 12) + "^~"; lines[2] != want {
		t.Errorf("caret line = %q, want %q", lines[2], want)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.wf", []byte("page {}\npage {}\n"))

	bag := diag.NewBag(4)
	d := diag.New(diag.SevError, diag.LntDuplicateRoot, source.Span{File: fileID, Start: 8, End: 12}, "Only one page component is allowed.")
	d = d.WithNote(source.Span{File: fileID, Start: 0, End: 4}, "first page component declared here")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true})
	if !strings.Contains(buf.String(), "note: test.wf:1:1: first page component declared here") {
		t.Fatalf("expected note with location, got:\n%s", buf.String())
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("notes must be hidden without ShowNotes:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("c.wf", []byte("}"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.LntUnmatchedBrace, source.Span{File: fileID, Start: 0, End: 1}, "Unmatched closing brace"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("plain output contains escapes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("colored output has no escapes: %q", colored.String())
	}
}

func TestShort(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("s.wf", []byte("foo\n}"))
	bag := diag.NewBag(4)
	bag.Add(diag.New(diag.SevWarning, diag.LntUnknownComponent, source.Span{File: fileID, Start: 0, End: 3}, `Unknown component: "foo"`))
	bag.Add(diag.NewError(diag.LntUnmatchedBrace, source.Span{File: fileID, Start: 4, End: 5}, "Unmatched closing brace"))

	var buf bytes.Buffer
	Short(&buf, bag, fs, PathModeBasename)
	want := "s.wf:1:1: warning LNT1002: Unknown component: \"foo\"\n" +
		"s.wf:2:1: error LNT1004: Unmatched closing brace\n"
	if buf.String() != want {
		t.Errorf("short output:\n got %q\nwant %q", buf.String(), want)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		if got, err := ParseFormat(string(f)); err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
