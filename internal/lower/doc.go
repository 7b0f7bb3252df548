// Package lower walks a parsed FanC program once, checking every node with
// the sema rules and emitting IR as it goes. All traversal state lives in
// an explicit Context, so a statement or expression can be lowered in
// isolation against a prepared scope.
//
// Lowering stops at the first error. The error is always a *diag.Error and
// any IR produced up to that point is discarded.
package lower
