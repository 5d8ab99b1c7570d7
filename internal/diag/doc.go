// Package diag defines the diagnostic model shared by the validator, the
// tokenizer, the CLI and the language server.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced by the structural validator (internal/lint) and the tokenizer.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any IO or CLI integration. Rendering lives in
// internal/diagfmt; editor position encodings live in internal/editor and
// internal/lsp.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity: four-level enum (Hint, Info, Warning, Error) ordered by
//     importance, defined in severity.go.
//   - Code: compact numeric identifier (see codes.go) with a stable string
//     form such as LNT1003 and, for lint checks, a kebab-case slug that the
//     configuration file uses to disable a check.
//   - Message: human oriented text. Messages of lint checks are part of the
//     public contract and must not change.
//   - Primary span: the canonical source.Span (byte offsets) pointing to the issue.
//   - Notes: optional secondary spans/messages for additional context.
//
// # Emitting diagnostics
//
// Producers use a diag.Reporter. ReportBuilder (ReportError/ReportWarning/
// ReportInfo) chains WithNote before calling Emit. BagReporter aggregates into
// a Bag, which supports limits, sorting, deduplication, filtering and
// transformation; SliceReporter keeps everything in emission order.
package diag
