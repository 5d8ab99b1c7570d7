// Package token defines lexical token kinds and trivia for Wireweave documents.
// Invariants:
//   - Token.Text is the exact source text covered by Token.Span.
//   - Comments and whitespace never appear in the token stream; they are
//     attached to the following token as leading Trivia.
//   - `true` and `false` are keywords; every other word is an Ident. Whether
//     an identifier names a component, an attribute or a value is decided by
//     the registry, not here.
package token
