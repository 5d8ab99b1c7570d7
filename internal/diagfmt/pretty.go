package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"wireweave/internal/diag"
	"wireweave/internal/source"
)

type palette struct {
	err, warn, info, hint *color.Color
	code, path, gutter    *color.Color
	caret, note           *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		hint:   color.New(color.FgHiBlack, color.Bold),
		code:   color.New(color.FgHiBlack),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.hint, p.code, p.path, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	case diag.SevInfo:
		return p.info
	default:
		return p.hint
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() как есть: внутри файла это порядок сканирования.
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	tab := int(opts.TabWidth)
	if tab == 0 {
		tab = 4
	}
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		f := fileOf(fs, d.Primary)
		if f == nil {
			fmt.Fprintf(w, "%s %s: %s\n", pal.severity(d.Severity).Sprint(d.Severity.String()), pal.code.Sprint(d.Code.ID()), d.Message)
			continue
		}
		pos := f.Position(d.Primary.Start)
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			pal.path.Sprintf("%s:%d:%d", displayPath(f, fs, opts.PathMode), pos.Line, pos.Col),
			pal.severity(d.Severity).Sprint(d.Severity.String()),
			pal.code.Sprint(d.Code.ID()),
			d.Message,
		)
		writeSnippet(w, f, d.Primary, int(opts.Context), tab, pal)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nf := fileOf(fs, n.Span)
			if nf == nil {
				fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("note:"), n.Msg)
				continue
			}
			np := nf.Position(n.Span.Start)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"), displayPath(nf, fs, opts.PathMode), np.Line, np.Col, n.Msg)
		}
	}
}

// writeSnippet печатает строку span'а с соседними строками и подчёркивание.
// Многострочный span подчёркивается до конца первой строки.
func writeSnippet(w io.Writer, f *source.File, sp source.Span, context, tab int, pal palette) {
	start := f.Position(sp.Start)
	line := start.Line
	first := line
	if context > 0 {
		first = uint32(max(1, int(line)-context)) // #nosec G115 -- line is uint32
	}
	last := min(f.LineCount(), line+uint32(max(context, 0))) // #nosec G115 -- context >= 0

	gw := len(fmt.Sprint(last))
	blank := strings.Repeat(" ", gw)
	for ln := first; ln <= last; ln++ {
		text := f.GetLine(ln)
		fmt.Fprintf(w, " %s %s\n", pal.gutter.Sprintf("%*d |", gw, ln), expandTabs(text, tab))
		if ln != line {
			continue
		}
		lineStart, lineEnd := f.LineStart(ln), f.LineEnd(ln)
		from := int(min(sp.Start, lineEnd) - lineStart)
		to := int(min(max(sp.End, sp.Start), lineEnd) - lineStart)
		pad := displayWidth(text[:from], tab)
		width := max(displayWidth(text[from:to], tab), 1)
		underline := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, " %s %s%s\n", pal.gutter.Sprintf("%s |", blank), strings.Repeat(" ", pad), pal.caret.Sprint(underline))
	}
}

func expandTabs(s string, tab int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tab - col%tab
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}

func displayWidth(s string, tab int) int {
	return runewidth.StringWidth(expandTabs(s, tab))
}
