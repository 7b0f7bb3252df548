package types

// IRType returns the machine type used to carry values of t.
// int, byte and bool all travel as i32.
func (t Type) IRType() string {
	switch t {
	case Void:
		return "void"
	case String:
		return "i8*"
	default:
		return "i32"
	}
}
