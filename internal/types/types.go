// Package types enumerates the FanC value types and the conversions
// between them. There are no user-defined types, so a Type is a plain tag.
package types

import "fmt"

// Type is one of the built-in FanC types.
type Type uint8

const (
	Invalid Type = iota
	Void
	Int
	Byte
	Bool
	String
)

func (t Type) String() string {
	switch t {
	case Invalid:
		return "invalid"
	case Void:
		return "void"
	case Int:
		return "int"
	case Byte:
		return "byte"
	case Bool:
		return "bool"
	case String:
		return "string"
	default:
		return fmt.Sprintf("Type(%d)", t)
	}
}

// IsNumeric reports whether t takes part in arithmetic (INT or BYTE).
func (t Type) IsNumeric() bool {
	return t == Int || t == Byte
}

// IsValue reports whether a variable or parameter may have type t.
func (t Type) IsValue() bool {
	return t == Int || t == Byte || t == Bool
}

// AssignableTo reports whether a value of type t can be stored into dst.
// The only implicit conversion is BYTE -> INT.
func (t Type) AssignableTo(dst Type) bool {
	if t == dst {
		return t != Invalid
	}
	return t == Byte && dst == Int
}

// Promote returns the arithmetic result of combining two numeric types.
func Promote(a, b Type) Type {
	if a == Int || b == Int {
		return Int
	}
	return Byte
}
