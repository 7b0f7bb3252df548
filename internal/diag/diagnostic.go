package diag

import (
	"fanc/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is the serialisable form of a finding.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Line     uint32
	Primary  source.Span
	Notes    []Note
}
