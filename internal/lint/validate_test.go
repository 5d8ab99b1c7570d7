package lint

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"wireweave/internal/diag"
	"wireweave/internal/registry"
	"wireweave/internal/source"
)

type finding struct {
	Sev   diag.Severity
	Code  diag.Code
	Start uint32
	End   uint32
	Msg   string
}

func validate(t *testing.T, text string, opts Options) []finding {
	t.Helper()
	diags := ValidateText(text, registry.Default(), opts)
	out := make([]finding, 0, len(diags))
	for _, d := range diags {
		out = append(out, finding{d.Severity, d.Code, d.Primary.Start, d.Primary.End, d.Message})
	}
	return out
}

func missingRoot() finding {
	return finding{diag.SevInfo, diag.LntMissingRoot, 0, 0, "Consider starting with a page component."}
}

func TestValidateScenarios(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []finding
	}{
		{
			name: "duplicate root",
			text: "page {}\npage {}\n",
			want: []finding{
				{diag.SevError, diag.LntDuplicateRoot, 8, 12, "Only one page component is allowed."},
			},
		},
		{
			name: "well formed without root",
			text: "card { text \"hi\" }",
			want: []finding{missingRoot()},
		},
		{
			name: "well formed",
			text: "page {\n  card { text \"hi\" }\n}",
			want: []finding{},
		},
		{
			name: "unknown component and attribute",
			text: "foo { bar=1 }",
			want: []finding{
				{diag.SevWarning, diag.LntUnknownComponent, 0, 3, `Unknown component: "foo"`},
				{diag.SevWarning, diag.LntUnknownAttribute, 6, 9, `Unknown attribute: "bar"`},
				missingRoot(),
			},
		},
		{
			name: "unclosed brace",
			text: "card {",
			want: []finding{
				{diag.SevError, diag.LntUnclosedBrace, 5, 6, "Unclosed brace (card)"},
				missingRoot(),
			},
		},
		{
			name: "unclosed string",
			text: "text \"unterminated",
			want: []finding{
				{diag.SevError, diag.LntUnclosedString, 0, 18, "Unclosed string"},
				missingRoot(),
			},
		},
		{
			name: "unmatched closing brace",
			text: "}",
			want: []finding{
				{diag.SevError, diag.LntUnmatchedBrace, 0, 1, "Unmatched closing brace"},
				missingRoot(),
			},
		},
		{
			name: "unclosed braces bottom first",
			text: "page {\n  card \"Settings\" {\n",
			want: []finding{
				{diag.SevError, diag.LntUnclosedBrace, 5, 6, "Unclosed brace (page)"},
				{diag.SevError, diag.LntUnclosedBrace, 25, 26, "Unclosed brace (card)"},
			},
		},
		{
			name: "brace without identifier",
			text: "page {\n  \"x\" {\n}",
			want: []finding{
				{diag.SevError, diag.LntUnclosedBrace, 5, 6, "Unclosed brace (page)"},
			},
		},
		{
			name: "comment lines are skipped",
			text: "// foo {\npage {}\n   // }",
			want: []finding{},
		},
		{
			name: "boolean literals are not components",
			text: "page {\n  true \"x\"\n  false {}\n}",
			want: []finding{},
		},
		{
			name: "value keyword on its own line is flagged",
			text: "page {\n  left \"x\"\n}",
			want: []finding{
				{diag.SevWarning, diag.LntUnknownComponent, 9, 13, `Unknown component: "left"`},
			},
		},
		{
			name: "dangling assignment does not carry to the next line",
			text: "page {\n  card title=\n    huge \"x\"\n}",
			want: []finding{
				{diag.SevWarning, diag.LntUnknownComponent, 25, 29, `Unknown component: "huge"`},
			},
		},
		{
			name: "component lookup ignores case",
			text: "Page {\n  CARD {}\n}",
			// the root check itself is case-sensitive
			want: []finding{missingRoot()},
		},
		{
			name: "attribute lookup is case-sensitive",
			text: "page { P=1 }",
			want: []finding{
				{diag.SevWarning, diag.LntUnknownAttribute, 7, 8, `Unknown attribute: "P"`},
			},
		},
		{
			name: "component names tolerated as attributes",
			text: "page { card=1 }",
			want: []finding{},
		},
		{
			name: "attributes inside strings are still scanned",
			text: "page { text \"a foo=1\" }",
			want: []finding{
				{diag.SevWarning, diag.LntUnknownAttribute, 15, 18, `Unknown attribute: "foo"`},
			},
		},
		{
			name: "several attributes with spaces before equals",
			text: "page { row gap = 4 zz =1 yy= 2 }",
			want: []finding{
				{diag.SevWarning, diag.LntUnknownAttribute, 19, 21, `Unknown attribute: "zz"`},
				{diag.SevWarning, diag.LntUnknownAttribute, 25, 27, `Unknown attribute: "yy"`},
			},
		},
		{
			name: "identifier at end of line is not a component candidate",
			text: "page {\n  mystery\n}",
			want: []finding{},
		},
		{
			name: "root needs a word boundary",
			text: "pages {}",
			want: []finding{
				{diag.SevWarning, diag.LntUnknownComponent, 0, 5, `Unknown component: "pages"`},
				missingRoot(),
			},
		},
		{
			name: "byte offsets past multibyte text",
			text: "page {\n  text \"héllo\" bogus=1\n}",
			want: []finding{
				{diag.SevWarning, diag.LntUnknownAttribute, 23, 28, `Unknown attribute: "bogus"`},
			},
		},
		{
			name: "blank text",
			text: "  \n\t\n",
			want: []finding{},
		},
		{
			name: "empty text",
			text: "",
			want: []finding{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := validate(t, tc.text, DefaultOptions())
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWellFormedHasNothingAboveInfo(t *testing.T) {
	for _, d := range ValidateText("card { text \"hi\" }", nil, DefaultOptions()) {
		if d.Severity >= diag.SevWarning {
			t.Fatalf("unexpected diagnostic %+v", d)
		}
	}
}

func TestDuplicateRootNotesFirstDeclaration(t *testing.T) {
	diags := ValidateText("page {}\npage {}\n", nil, DefaultOptions())
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(diags))
	}
	notes := diags[0].Notes
	if len(notes) != 1 || notes[0].Span.Start != 0 || notes[0].Span.End != 4 {
		t.Fatalf("unexpected notes: %+v", notes)
	}
}

func TestDisabledChecks(t *testing.T) {
	opts := DefaultOptions()
	opts.Disabled = []diag.Code{diag.LntUnknownAttribute, diag.LntMissingRoot}
	got := validate(t, "foo { bar=1 }", opts)
	want := []finding{
		{diag.SevWarning, diag.LntUnknownComponent, 0, 3, `Unknown component: "foo"`},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	// a disabled duplicate-root check still marks the root as seen
	opts.Disabled = []diag.Code{diag.LntDuplicateRoot}
	if got := validate(t, "page {}\npage {}", opts); len(got) != 0 {
		t.Fatalf("expected nothing, got %+v", got)
	}
}

func TestCustomRootAndComment(t *testing.T) {
	reg, err := registry.New([]registry.Component{
		{Name: "screen", HasChildren: true},
		{Name: "box", HasChildren: true},
	}, []registry.Attribute{{Name: "w", Kind: registry.KindNumber}}, "screen")
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	opts := Options{RootComponent: "screen", CommentMarker: "#"}
	text := "# page {\nscreen {\n  box w=1 {}\n}\nscreen {}"
	diags := ValidateText(text, reg, opts)
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %+v", diags)
	}
	if diags[0].Message != "Only one screen component is allowed." {
		t.Fatalf("unexpected message %q", diags[0].Message)
	}

	diags = ValidateText("box {}", reg, opts)
	if len(diags) != 1 || diags[0].Message != "Consider starting with a screen component." {
		t.Fatalf("unexpected diagnostics %+v", diags)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	text := "foo {\n  bar=1 \"x\n}\n}\npage {\npage {"
	first := ValidateText(text, nil, DefaultOptions())
	second := ValidateText(text, nil, DefaultOptions())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("validation is not deterministic (-first +second):\n%s", diff)
	}
}

var malformedInputs = []string{
	"",
	"\n",
	"{",
	"}}}}",
	"{{{{",
	"\"",
	"\"\"\"",
	"page",
	"page page page {",
	"=",
	"==a==b",
	"a=\n=\n",
	"\x00\xff\xfe{",
	"page {\r\n}\r\n",
	"\ufeffpage {}",
	"😀 { 😀=1 }",
	"text \"é\" {\n\"",
	strings.Repeat("card {", 200),
	strings.Repeat("}", 50) + strings.Repeat("{", 50),
	"// only comment {",
}

func TestSpansStayInBounds(t *testing.T) {
	for _, text := range malformedInputs {
		assertSpansInBounds(t, text)
	}
}

func assertSpansInBounds(t *testing.T, text string) {
	t.Helper()
	size := uint32(len(text))
	for _, d := range ValidateText(text, nil, DefaultOptions()) {
		if d.Primary.Start > d.Primary.End || d.Primary.End > size {
			t.Fatalf("span %v out of bounds for %q (len %d)", d.Primary, text, size)
		}
		for _, n := range d.Notes {
			if n.Span.Start > n.Span.End || n.Span.End > size {
				t.Fatalf("note span %v out of bounds for %q", n.Span, text)
			}
		}
	}
}

func FuzzValidate(f *testing.F) {
	for _, seed := range malformedInputs {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, text string) {
		assertSpansInBounds(t, text)
	})
}

func TestGoldenSample(t *testing.T) {
	text := `page "Dashboard" centered {
  // header comment {
  header h=56 border {
    title "Welcome" level=2
    bogus "x"
  }
  main p=6 colour=red {
    text "unterminated
  }
}
}
`
	fs := source.NewFileSet()
	id := fs.AddVirtual("sample.ww", []byte(text))
	diags := Validate(fs.Get(id), registry.Default(), DefaultOptions())

	want := strings.Join([]string{
		`warning LNT1002 sample.ww:5:5 Unknown component: "bogus"`,
		`warning LNT1003 sample.ww:7:12 Unknown attribute: "colour"`,
		`error LNT1005 sample.ww:8:1 Unclosed string`,
		`error LNT1004 sample.ww:11:1 Unmatched closing brace`,
	}, "\n")
	if got := diag.FormatGoldenDiagnostics(diags, fs, false); got != want {
		t.Fatalf("golden mismatch:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}

func TestEnclosingComponent(t *testing.T) {
	cases := []struct {
		prefix string
		want   string
		ok     bool
	}{
		{"card ", "card", true},
		{"card", "card", true},
		{`card "Settings" `, "card", true},
		{`page "Dashboard" centered `, "centered", true},
		{`button "a b" card `, "card", true},
		{`text "hello `, "hello", true},
		{`foo"bar" `, "", false},
		{`  "x" `, "", false},
		{"a = ", "", false},
		{"", "", false},
		{"   ", "", false},
	}
	for _, tc := range cases {
		got, ok := EnclosingComponent(tc.prefix)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("EnclosingComponent(%q) = %q, %v; want %q, %v", tc.prefix, got, ok, tc.want, tc.ok)
		}
	}
}

func TestOffsetConversionSaturates(t *testing.T) {
	v := &validator{file: source.NewFile("big.ww", nil)}
	if got := v.u32(-1); got != 0 {
		t.Fatalf("u32(-1) = %d, want 0", got)
	}
	if got := v.u32(42); got != 42 {
		t.Fatalf("u32(42) = %d, want 42", got)
	}
	if strconv.IntSize == 64 {
		if got := v.u32(math.MaxInt); got != math.MaxUint32 {
			t.Fatalf("u32(MaxInt) = %d, want %d", got, uint32(math.MaxUint32))
		}
	}
}
