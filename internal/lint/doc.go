// Package lint implements the structural validator for Wireweave documents.
//
// The validator is a single pass over the text, line by line. It tracks
// `{`/`}` nesting with a stack and reports:
//
//   - duplicate root components,
//   - unknown component names at the start of a line,
//   - unknown `name=` attributes,
//   - unmatched closing braces and braces left open at end of input,
//   - lines with an odd number of double quotes,
//   - documents that never declare the root component.
//
// There is no parse tree; every check is a byte-level heuristic over one
// line. Malformed input is never an error: it only produces diagnostics.
// Diagnostics come out in scan order (line-major, then check order within a
// line, left to right inside a check), end-of-input findings last.
package lint
