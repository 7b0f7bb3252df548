// Package trace records what the fanc driver is doing: which files are being
// compiled and how long each phase takes. Tracing is off unless --trace is
// given.
//
//	fanc build --trace=- --trace-level=phase prog.fanc
//
// Events go to a StreamTracer (written as they happen), a RingTracer (the
// last N events, dumped when the compiler panics) or both. Spans nest by
// parent ID and carry the goroutine that ran them, which matters once
// several files compile in parallel.
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lower", parent)
//	defer span.End("")
package trace
