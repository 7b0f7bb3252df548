package llvm

import (
	"fmt"
	"strings"
)

// Buffer accumulates one compilation's IR. Globals and function bodies are
// kept in separate regions and joined by Render. Temporaries, labels and
// string globals are numbered from zero and never reused.
//
// Inside a function, stack slots go to their own region that EndFunc places
// at the top of the entry block, so a slot is allocated once per call no
// matter which block declared it.
type Buffer struct {
	globals strings.Builder
	body    strings.Builder

	allocas strings.Builder
	fn      strings.Builder
	inFunc  bool

	temps   int
	labels  int
	strs    int
	pending bool // the current block has no terminator yet

	divZero    string
	divZeroLen int
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// FreshTemp returns a new SSA temporary, %tN.
func (b *Buffer) FreshTemp() string {
	name := fmt.Sprintf("%%t%d", b.temps)
	b.temps++
	return name
}

// FreshLabel returns a new block reference, %label_N.
func (b *Buffer) FreshLabel() string {
	name := fmt.Sprintf("%%label_%d", b.labels)
	b.labels++
	return name
}

// AllocSlot reserves an i32 stack slot in the entry block and returns its
// address. It satisfies symbols.SlotAllocator.
func (b *Buffer) AllocSlot() string {
	slot := b.FreshTemp()
	if !b.inFunc {
		b.Emit("%s = alloca i32", slot)
		return slot
	}
	fmt.Fprintf(&b.allocas, "  %s = alloca i32\n", slot)
	return slot
}

// out is the stream instructions currently go to.
func (b *Buffer) out() *strings.Builder {
	if b.inFunc {
		return &b.fn
	}
	return &b.body
}

// InternString pools text as a NUL-terminated global and returns the global
// name and the array length.
func (b *Buffer) InternString(text string) (name string, length int) {
	name = fmt.Sprintf("@.str%d", b.strs)
	b.strs++
	length = len(text) + 1
	fmt.Fprintf(&b.globals, "%s = constant [%d x i8] %s\n", name, length, formatBytes(text))
	return name, length
}

// DivZeroMessage returns the pooled division-by-zero message, interning it
// on first use.
func (b *Buffer) DivZeroMessage() (name string, length int) {
	if b.divZero == "" {
		b.divZero, b.divZeroLen = b.InternString(divZeroText)
	}
	return b.divZero, b.divZeroLen
}

// Emit appends one instruction to the current block.
func (b *Buffer) Emit(format string, args ...any) {
	w := b.out()
	w.WriteString("  ")
	fmt.Fprintf(w, format, args...)
	w.WriteByte('\n')
	b.pending = true
}

// Comment appends an IR comment line.
func (b *Buffer) Comment(format string, args ...any) {
	w := b.out()
	w.WriteString("  ; ")
	fmt.Fprintf(w, format, args...)
	w.WriteByte('\n')
}

// Terminate appends a terminator instruction and closes the current block.
func (b *Buffer) Terminate(format string, args ...any) {
	b.Emit(format, args...)
	b.pending = false
}

// Br emits an unconditional branch to label.
func (b *Buffer) Br(label string) {
	b.Terminate("br label %s", label)
}

// CondBr emits a conditional branch on an i1 value.
func (b *Buffer) CondBr(cond, ifTrue, ifFalse string) {
	b.Terminate("br i1 %s, label %s, label %s", cond, ifTrue, ifFalse)
}

// EmitLabel opens the block named by label. The previous block must already
// be terminated.
func (b *Buffer) EmitLabel(label string) {
	if b.pending {
		panic(fmt.Errorf("llvm: block before %s has no terminator", label))
	}
	w := b.out()
	w.WriteString(strings.TrimPrefix(label, "%"))
	w.WriteString(":\n")
}

// BeginFunc writes a function header. The entry block is unlabeled.
func (b *Buffer) BeginFunc(ret, name string, params []string) {
	fmt.Fprintf(&b.body, "define %s @%s(%s) {\n", ret, name, strings.Join(params, ", "))
	b.allocas.Reset()
	b.fn.Reset()
	b.inFunc = true
	b.pending = false
}

// EndFunc closes the function with a default return of zero for ret and
// flushes its slots ahead of the body.
func (b *Buffer) EndFunc(ret string) {
	if ret == "void" {
		b.Terminate("ret void")
	} else {
		b.Terminate("ret %s 0", ret)
	}
	b.body.WriteString(b.allocas.String())
	b.body.WriteString(b.fn.String())
	b.body.WriteString("}\n\n")
	b.allocas.Reset()
	b.fn.Reset()
	b.inFunc = false
}

// Render returns the complete module: runtime support, pooled globals, then
// function bodies in declaration order.
func (b *Buffer) Render() string {
	var out strings.Builder
	writeRuntime(&out)
	out.WriteString("\n")
	if b.globals.Len() > 0 {
		out.WriteString(b.globals.String())
		out.WriteString("\n")
	}
	out.WriteString(b.body.String())
	return out.String()
}
