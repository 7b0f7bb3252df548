package diag

import "fanc/internal/source"

// Reporter receives diagnostics from phases that keep going after a finding,
// such as the standalone tokenizer.
type Reporter interface {
	Report(code Code, sev Severity, line uint32, primary source.Span, msg string)
}

// BagReporter writes into *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, line uint32, primary source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Line: line, Primary: primary,
	})
}
