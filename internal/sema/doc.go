// Package sema holds the FanC typing rules. Every rule is a pure function
// of operand types and resolved symbols: it returns the result type or the
// *diag.Error to report. The lowering pass calls the rules inline while it
// walks the tree, so the first failing rule in depth-first, left-to-right
// order is the error the user sees.
package sema
