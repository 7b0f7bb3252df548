package types

import "testing"

func TestAssignableTo(t *testing.T) {
	cases := []struct {
		src, dst Type
		want     bool
	}{
		{Int, Int, true},
		{Byte, Int, true},
		{Int, Byte, false},
		{Bool, Int, false},
		{Byte, Byte, true},
		{String, String, true},
		{Void, Void, true},
		{Bool, Bool, true},
		{Invalid, Invalid, false},
	}
	for _, tc := range cases {
		if got := tc.src.AssignableTo(tc.dst); got != tc.want {
			t.Fatalf("%s -> %s: got %v, want %v", tc.src, tc.dst, got, tc.want)
		}
	}
}

func TestPromote(t *testing.T) {
	if Promote(Byte, Byte) != Byte {
		t.Fatalf("byte+byte should stay byte")
	}
	if Promote(Byte, Int) != Int || Promote(Int, Byte) != Int || Promote(Int, Int) != Int {
		t.Fatalf("any int operand should give int")
	}
}

func TestIRType(t *testing.T) {
	for _, tc := range []struct {
		typ  Type
		want string
	}{{Int, "i32"}, {Byte, "i32"}, {Bool, "i32"}, {String, "i8*"}, {Void, "void"}} {
		if got := tc.typ.IRType(); got != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.typ, got, tc.want)
		}
	}
}
