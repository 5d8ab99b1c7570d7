package lint

import (
	"fmt"
	"math"
	"strings"

	"fortio.org/safecast"

	"wireweave/internal/diag"
	"wireweave/internal/registry"
	"wireweave/internal/source"
)

// MaxDocumentSize is the largest document Run scans, in bytes.
const MaxDocumentSize = math.MaxUint32

// braceFrame records an open `{` until its matching `}`.
type braceFrame struct {
	line      uint32 // 0-based
	col       uint32 // byte column
	offset    uint32
	component string // empty when no identifier precedes the brace
}

type validator struct {
	file     *source.File
	reg      *registry.Registry
	opts     Options
	reporter diag.Reporter

	text      string
	lineNum   uint32
	lineStart uint32
	stack     []braceFrame
	seenRoot  bool
	rootSpan  source.Span
}

// Validate checks a document and returns its diagnostics in scan order.
func Validate(file *source.File, reg *registry.Registry, opts Options) []diag.Diagnostic {
	var sink diag.SliceReporter
	Run(file, reg, opts, &sink)
	return sink.Items
}

// ValidateText checks an in-memory document.
func ValidateText(text string, reg *registry.Registry, opts Options) []diag.Diagnostic {
	return Validate(source.NewFile("", []byte(text)), reg, opts)
}

// Run checks a document and emits every diagnostic to reporter.
// A nil registry means registry.Default(). Spans are uint32 offsets, so
// documents larger than MaxDocumentSize are rejected before scanning and
// produce no diagnostics.
func Run(file *source.File, reg *registry.Registry, opts Options, reporter diag.Reporter) {
	if file == nil || reporter == nil || uint64(len(file.Content)) > MaxDocumentSize {
		return
	}
	if reg == nil {
		reg = registry.Default()
	}
	v := &validator{
		file:     file,
		reg:      reg,
		opts:     opts.withDefaults(),
		reporter: reporter,
		text:     string(file.Content),
	}
	v.run()
}

func (v *validator) run() {
	rest := v.text
	for {
		line, tail, more := strings.Cut(rest, "\n")
		v.checkLine(line)
		if !more {
			break
		}
		v.lineStart += v.u32(len(line) + 1)
		v.lineNum++
		rest = tail
	}
	v.finish()
}

func (v *validator) checkLine(line string) {
	trimmed := trimSpace(line)
	if strings.HasPrefix(trimmed, v.opts.CommentMarker) {
		return
	}

	v.checkRoot(line)
	v.checkComponent(line)
	v.checkAttributes(line)
	v.trackBraces(line)
	v.checkQuotes(line)
}

// checkRoot: the line starts with the root identifier as a whole word.
func (v *validator) checkRoot(line string) {
	root := v.opts.RootComponent
	i := skipSpace(line, 0)
	if !strings.HasPrefix(line[i:], root) {
		return
	}
	if end := i + len(root); end < len(line) && isWordByte(line[end]) {
		return
	}
	sp := v.span(i, i+len(root))
	if v.seenRoot {
		v.report(diag.ReportError(v.reporter, diag.LntDuplicateRoot, sp,
			fmt.Sprintf("Only one %s component is allowed.", root)).
			WithNote(v.rootSpan, fmt.Sprintf("first %s component declared here", root)))
		return
	}
	v.seenRoot = true
	v.rootSpan = sp
}

// checkComponent: a leading identifier followed by whitespace, `{` or `"` must name a component.
func (v *validator) checkComponent(line string) {
	start := skipSpace(line, 0)
	end := scanWord(line, start)
	if end == start || end >= len(line) {
		return
	}
	if _, ok := spaceAt(line, end); !ok && line[end] != '{' && line[end] != '"' {
		return
	}
	name := line[start:end]
	if name == "true" || name == "false" || v.reg.IsComponent(name) {
		return
	}
	v.report(diag.ReportWarning(v.reporter, diag.LntUnknownComponent, v.span(start, end),
		fmt.Sprintf("Unknown component: %q", name)))
}

// checkAttributes: every `ident =` on the line, including inside quotes.
func (v *validator) checkAttributes(line string) {
	i := 0
	for i < len(line) {
		if !isWordByte(line[i]) || (i > 0 && isWordByte(line[i-1])) {
			i++
			continue
		}
		end := scanWord(line, i)
		eq := skipSpace(line, end)
		if eq >= len(line) || line[eq] != '=' {
			i = end
			continue
		}
		name := line[i:end]
		if !v.reg.IsAttribute(name) && !v.reg.IsComponent(name) {
			v.report(diag.ReportWarning(v.reporter, diag.LntUnknownAttribute, v.span(i, end),
				fmt.Sprintf("Unknown attribute: %q", name)))
		}
		i = eq + 1
	}
}

func (v *validator) trackBraces(line string) {
	for col := 0; col < len(line); col++ {
		switch line[col] {
		case '{':
			component, _ := EnclosingComponent(line[:col])
			v.stack = append(v.stack, braceFrame{
				line:      v.lineNum,
				col:       v.u32(col),
				offset:    v.lineStart + v.u32(col),
				component: component,
			})
		case '}':
			if len(v.stack) == 0 {
				v.report(diag.ReportError(v.reporter, diag.LntUnmatchedBrace, v.span(col, col+1),
					"Unmatched closing brace"))
				continue
			}
			v.stack = v.stack[:len(v.stack)-1]
		}
	}
}

func (v *validator) checkQuotes(line string) {
	if strings.Count(line, `"`)%2 != 0 {
		v.report(diag.ReportError(v.reporter, diag.LntUnclosedString, v.span(0, len(line)),
			"Unclosed string"))
	}
}

func (v *validator) finish() {
	for _, frame := range v.stack {
		msg := "Unclosed brace"
		if frame.component != "" {
			msg = fmt.Sprintf("Unclosed brace (%s)", frame.component)
		}
		sp := source.Span{File: v.file.ID, Start: frame.offset, End: frame.offset + 1}
		v.report(diag.ReportError(v.reporter, diag.LntUnclosedBrace, sp, msg))
	}
	v.stack = nil

	if !v.seenRoot && !isBlank(v.text) {
		sp := source.Span{File: v.file.ID}
		v.report(diag.ReportInfo(v.reporter, diag.LntMissingRoot, sp,
			fmt.Sprintf("Consider starting with a %s component.", v.opts.RootComponent)))
	}
}

func (v *validator) report(b *diag.ReportBuilder) {
	if v.opts.enabled(b.Diagnostic().Code) {
		b.Emit()
	}
}

// span builds a file span from byte columns of the current line.
func (v *validator) span(from, to int) source.Span {
	return source.Span{
		File:  v.file.ID,
		Start: v.lineStart + v.u32(from),
		End:   v.lineStart + v.u32(to),
	}
}

// u32 насыщается на границах uint32; Run не пускает такие документы.
func (v *validator) u32(n int) uint32 {
	out, err := safecast.Conv[uint32](n)
	if err != nil {
		if n < 0 {
			return 0
		}
		return math.MaxUint32
	}
	return out
}
