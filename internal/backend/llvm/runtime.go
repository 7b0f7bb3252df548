package llvm

import (
	"fmt"
	"io"
	"strings"
)

const divZeroText = "Error division by zero"

type builtinDecl struct {
	name   string
	ret    string
	params []string
}

func runtimeDecls() []builtinDecl {
	return []builtinDecl{
		{name: "scanf", ret: "i32", params: []string{"i8*", "..."}},
		{name: "printf", ret: "i32", params: []string{"i8*", "..."}},
		{name: "exit", ret: "void", params: []string{"i32"}},
	}
}

type formatConst struct {
	name string
	text string
}

func formatConsts() []formatConst {
	return []formatConst{
		{name: ".int_specifier_scan", text: "%d"},
		{name: ".int_specifier", text: "%d\n"},
		{name: ".str_specifier", text: "%s\n"},
	}
}

// runtimeHelpers are defined in every module. readi is emitted for
// completeness but is not visible to FanC programs.
const runtimeHelpers = `define i32 @readi(i32) {
  %ret_val = alloca i32
  %spec_ptr = getelementptr [3 x i8], [3 x i8]* @.int_specifier_scan, i32 0, i32 0
  call i32 (i8*, ...) @scanf(i8* %spec_ptr, i32* %ret_val)
  %val = load i32, i32* %ret_val
  ret i32 %val
}

define void @printi(i32) {
  %spec_ptr = getelementptr [4 x i8], [4 x i8]* @.int_specifier, i32 0, i32 0
  call i32 (i8*, ...) @printf(i8* %spec_ptr, i32 %0)
  ret void
}

define void @print(i8*) {
  %spec_ptr = getelementptr [4 x i8], [4 x i8]* @.str_specifier, i32 0, i32 0
  call i32 (i8*, ...) @printf(i8* %spec_ptr, i8* %0)
  ret void
}
`

func writeRuntime(w io.Writer) {
	for _, decl := range runtimeDecls() {
		fmt.Fprintf(w, "declare %s @%s(%s)\n", decl.ret, decl.name, strings.Join(decl.params, ", "))
	}
	for _, c := range formatConsts() {
		fmt.Fprintf(w, "@%s = constant [%d x i8] %s\n", c.name, len(c.text)+1, formatBytes(c.text))
	}
	io.WriteString(w, "\n")
	io.WriteString(w, runtimeHelpers)
}

// ReservedNames are runtime symbols a FanC function may not take over.
func ReservedNames() []string {
	names := make([]string, 0, 4)
	for _, d := range runtimeDecls() {
		names = append(names, d.name)
	}
	return append(names, "readi")
}

// FuncName maps a FanC function name to its IR symbol. User functions that
// collide with runtime symbols get a "fanc." prefix.
func FuncName(name string, builtin bool) string {
	if builtin {
		return name
	}
	for _, r := range ReservedNames() {
		if r == name {
			return "fanc." + name
		}
	}
	return name
}
