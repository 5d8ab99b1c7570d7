// Package editor re-encodes validator diagnostics for browser editors.
//
// Two shapes are produced from the same diagnostics: flat document offsets
// (CodeMirror style) and line/column markers (Monaco style). Adapters only
// change how positions are encoded; severity and message pass through and
// every input diagnostic yields exactly one output entry.
package editor

import (
	"wireweave/internal/diag"
	"wireweave/internal/source"
)

// OffsetDiagnostic is a diagnostic positioned by document offsets.
type OffsetDiagnostic struct {
	From     uint32 `json:"from" msgpack:"from"`
	To       uint32 `json:"to" msgpack:"to"`
	Severity string `json:"severity" msgpack:"severity"` // error|warning|info|hint
	Message  string `json:"message" msgpack:"message"`
}

// ToOffsets keeps byte offsets as produced by the validator.
func ToOffsets(diags []diag.Diagnostic) []OffsetDiagnostic {
	out := make([]OffsetDiagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, OffsetDiagnostic{
			From:     d.Primary.Start,
			To:       d.Primary.End,
			Severity: d.Severity.Label(),
			Message:  d.Message,
		})
	}
	return out
}

// ToUTF16Offsets converts offsets to UTF-16 code units, the string indexing
// of JavaScript hosts.
func ToUTF16Offsets(file *source.File, diags []diag.Diagnostic) []OffsetDiagnostic {
	out := ToOffsets(diags)
	if file == nil {
		return out
	}
	for i := range out {
		out[i].From = file.UTF16Offset(out[i].From)
		out[i].To = file.UTF16Offset(out[i].To)
	}
	return out
}

// MarkerSeverity uses the numeric levels of Monaco's MarkerSeverity.
type MarkerSeverity int

const (
	MarkerHint    MarkerSeverity = 1
	MarkerInfo    MarkerSeverity = 2
	MarkerWarning MarkerSeverity = 4
	MarkerError   MarkerSeverity = 8
)

// MarkerSeverityOf maps a diagnostic severity to its marker level.
func MarkerSeverityOf(sev diag.Severity) MarkerSeverity {
	switch sev {
	case diag.SevError:
		return MarkerError
	case diag.SevWarning:
		return MarkerWarning
	case diag.SevInfo:
		return MarkerInfo
	default:
		return MarkerHint
	}
}

// Marker is a diagnostic positioned by 1-based lines and 1-based UTF-16 columns.
type Marker struct {
	Severity        MarkerSeverity `json:"severity" msgpack:"severity"`
	Message         string         `json:"message" msgpack:"message"`
	StartLineNumber uint32         `json:"startLineNumber" msgpack:"startLineNumber"`
	StartColumn     uint32         `json:"startColumn" msgpack:"startColumn"`
	EndLineNumber   uint32         `json:"endLineNumber" msgpack:"endLineNumber"`
	EndColumn       uint32         `json:"endColumn" msgpack:"endColumn"`
}

// ToMarkers converts diagnostics of file into markers.
func ToMarkers(file *source.File, diags []diag.Diagnostic) []Marker {
	out := make([]Marker, 0, len(diags))
	for _, d := range diags {
		startLine, startCol := file.UTF16Position(d.Primary.Start)
		endLine, endCol := file.UTF16Position(d.Primary.End)
		out = append(out, Marker{
			Severity:        MarkerSeverityOf(d.Severity),
			Message:         d.Message,
			StartLineNumber: startLine + 1,
			StartColumn:     startCol + 1,
			EndLineNumber:   endLine + 1,
			EndColumn:       endCol + 1,
		})
	}
	return out
}
