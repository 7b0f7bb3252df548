package diag

// Severity ranks a diagnostic. Analysis itself only produces errors; notes
// hang off them as extra context.
type Severity uint8

const (
	SevNote Severity = iota
	SevError
)

var severityNames = [...]string{
	SevNote:  "NOTE",
	SevError: "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}
