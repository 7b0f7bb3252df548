// Package diag defines the error model shared by all compiler phases.
//
// The compiler is fail-fast: lexing, parsing and lowering return the first
// *Error they find and stop. Error carries the numeric Code (see codes.go),
// the 1-based source line and the payload needed to render the exact
// user-facing message, e.g. "line 3: symbol x is already defined".
//
// Diagnostic and Bag are the serialisable view used by tooling that wants a
// list rather than a single error (the tokenizer command, JSON output).
// Rendering lives in internal/diagfmt; choosing the exit status is the
// job of cmd/fanc.
package diag
