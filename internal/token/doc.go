// Package token defines lexical token kinds for the FanC compiler.
// Invariants:
//   - Token.Text is a slice of the original source (no copies), except for
//     StringLit whose Value holds the unescaped payload.
//   - Token.Span matches Text exactly.
//   - Type names (int, byte, bool, void) are keywords, not identifiers.
package token
