package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"wireweave/internal/lint"
	"wireweave/internal/registry"
	"wireweave/internal/source"
)

func TestToOffsets(t *testing.T) {
	file := source.NewFile("doc.ww", []byte("foo { bar=1 }"))
	diags := lint.Validate(file, registry.Default(), lint.DefaultOptions())

	want := []OffsetDiagnostic{
		{From: 0, To: 3, Severity: "warning", Message: `Unknown component: "foo"`},
		{From: 6, To: 9, Severity: "warning", Message: `Unknown attribute: "bar"`},
		{From: 0, To: 0, Severity: "info", Message: "Consider starting with a page component."},
	}
	if diff := cmp.Diff(want, ToOffsets(diags)); diff != "" {
		t.Fatalf("offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestToMarkers(t *testing.T) {
	file := source.NewFile("doc.ww", []byte("page {\n  card {\n}\n}\n}"))
	diags := lint.Validate(file, registry.Default(), lint.DefaultOptions())

	want := []Marker{
		{Severity: MarkerError, Message: "Unmatched closing brace", StartLineNumber: 5, StartColumn: 1, EndLineNumber: 5, EndColumn: 2},
	}
	if diff := cmp.Diff(want, ToMarkers(file, diags)); diff != "" {
		t.Fatalf("markers mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkersUseUTF16Columns(t *testing.T) {
	// "😀" is four bytes but two UTF-16 units.
	text := "page {\n  text \"😀\" oops=1\n}"
	file := source.NewFile("doc.ww", []byte(text))
	diags := lint.Validate(file, registry.Default(), lint.DefaultOptions())
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %+v", diags)
	}

	markers := ToMarkers(file, diags)
	want := Marker{Severity: MarkerWarning, Message: `Unknown attribute: "oops"`, StartLineNumber: 2, StartColumn: 14, EndLineNumber: 2, EndColumn: 18}
	if diff := cmp.Diff(want, markers[0]); diff != "" {
		t.Fatalf("marker mismatch (-want +got):\n%s", diff)
	}

	bytes := ToOffsets(diags)[0]
	units := ToUTF16Offsets(file, diags)[0]
	if bytes.From != 21 || units.From != 20 || units.To-units.From != 4 {
		t.Fatalf("offsets: bytes=%+v utf16=%+v", bytes, units)
	}
}

func TestAdaptersPreserveCountSeverityMessage(t *testing.T) {
	text := "foo {\n  \"x\n}\n}\npage {}\npage {"
	file := source.NewFile("doc.ww", []byte(text))
	diags := lint.Validate(file, registry.Default(), lint.DefaultOptions())
	offsets := ToOffsets(diags)
	markers := ToMarkers(file, diags)
	if len(offsets) != len(diags) || len(markers) != len(diags) {
		t.Fatalf("adapters changed the count: %d/%d/%d", len(diags), len(offsets), len(markers))
	}
	for i, d := range diags {
		if offsets[i].Message != d.Message || markers[i].Message != d.Message {
			t.Fatalf("message changed at %d", i)
		}
		if offsets[i].Severity != d.Severity.Label() || markers[i].Severity != MarkerSeverityOf(d.Severity) {
			t.Fatalf("severity changed at %d", i)
		}
		// both encodings agree on the position
		line, col := file.UTF16Position(d.Primary.Start)
		if markers[i].StartLineNumber != line+1 || markers[i].StartColumn != col+1 {
			t.Fatalf("marker %d disagrees with offsets", i)
		}
	}
}

func TestAdaptersKeepScanOrder(t *testing.T) {
	const missingRoot = "Consider starting with a page component."
	cases := []struct {
		name    string
		text    string
		offsets []OffsetDiagnostic
		markers []Marker
	}{
		{
			name: "unmatched brace before missing root",
			text: "card {\n  foo \"x\"\n}\n}",
			offsets: []OffsetDiagnostic{
				{From: 9, To: 12, Severity: "warning", Message: `Unknown component: "foo"`},
				{From: 19, To: 20, Severity: "error", Message: "Unmatched closing brace"},
				{From: 0, To: 0, Severity: "info", Message: missingRoot},
			},
			markers: []Marker{
				{Severity: MarkerWarning, Message: `Unknown component: "foo"`, StartLineNumber: 2, StartColumn: 3, EndLineNumber: 2, EndColumn: 6},
				{Severity: MarkerError, Message: "Unmatched closing brace", StartLineNumber: 4, StartColumn: 1, EndLineNumber: 4, EndColumn: 2},
				{Severity: MarkerInfo, Message: missingRoot, StartLineNumber: 1, StartColumn: 1, EndLineNumber: 1, EndColumn: 1},
			},
		},
		{
			name: "unclosed brace follows later lines",
			text: "card {\n  foo \"x\"\n  row {\n}\n",
			offsets: []OffsetDiagnostic{
				{From: 9, To: 12, Severity: "warning", Message: `Unknown component: "foo"`},
				{From: 5, To: 6, Severity: "error", Message: "Unclosed brace (card)"},
				{From: 0, To: 0, Severity: "info", Message: missingRoot},
			},
			markers: []Marker{
				{Severity: MarkerWarning, Message: `Unknown component: "foo"`, StartLineNumber: 2, StartColumn: 3, EndLineNumber: 2, EndColumn: 6},
				{Severity: MarkerError, Message: "Unclosed brace (card)", StartLineNumber: 1, StartColumn: 6, EndLineNumber: 1, EndColumn: 7},
				{Severity: MarkerInfo, Message: missingRoot, StartLineNumber: 1, StartColumn: 1, EndLineNumber: 1, EndColumn: 1},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			file := source.NewFile("doc.ww", []byte(tc.text))
			diags := lint.Validate(file, registry.Default(), lint.DefaultOptions())
			if diff := cmp.Diff(tc.offsets, ToOffsets(diags)); diff != "" {
				t.Fatalf("offsets mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.offsets, ToUTF16Offsets(file, diags)); diff != "" {
				t.Fatalf("utf16 offsets mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.markers, ToMarkers(file, diags)); diff != "" {
				t.Fatalf("markers mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
