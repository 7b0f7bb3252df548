package llvm

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestFreshNamesAreUnique(t *testing.T) {
	b := NewBuffer()
	be.Equal(t, b.FreshTemp(), "%t0")
	be.Equal(t, b.FreshTemp(), "%t1")
	be.Equal(t, b.FreshLabel(), "%label_0")
	be.Equal(t, b.FreshLabel(), "%label_1")
	be.Equal(t, b.AllocSlot(), "%t2")
}

func TestInternString(t *testing.T) {
	b := NewBuffer()
	name, n := b.InternString("hi \"x\"\n")
	be.Equal(t, name, "@.str0")
	be.Equal(t, n, 8)
	again, _ := b.InternString("hi")
	be.Equal(t, again, "@.str1")

	out := b.Render()
	be.True(t, strings.Contains(out, `@.str0 = constant [8 x i8] c"hi \22x\22\0A\00"`))
	be.True(t, strings.Contains(out, `@.str1 = constant [3 x i8] c"hi\00"`))
}

func TestDivZeroMessagePooledOnce(t *testing.T) {
	b := NewBuffer()
	first, n := b.DivZeroMessage()
	second, _ := b.DivZeroMessage()
	be.Equal(t, first, second)
	be.Equal(t, n, len("Error division by zero")+1)
	be.Equal(t, strings.Count(b.Render(), "Error division by zero"), 1)
}

func TestEmitLabelRequiresTerminator(t *testing.T) {
	b := NewBuffer()
	b.BeginFunc("void", "f", nil)
	b.Emit("%%t0 = add i32 1, 2")
	defer func() {
		be.True(t, recover() != nil)
	}()
	b.EmitLabel("%label_0")
}

func TestRenderOrder(t *testing.T) {
	b := NewBuffer()
	b.BeginFunc("void", "main", nil)
	name, n := b.InternString("hello")
	b.Emit("call void @print(i8* %s)", StringPtr(name, n))
	b.EndFunc("void")

	out := b.Render()
	decl := strings.Index(out, "declare i32 @printf")
	helper := strings.Index(out, "define void @print(i8*)")
	global := strings.Index(out, "@.str0 =")
	main := strings.Index(out, "define void @main()")
	be.True(t, decl >= 0 && decl < helper)
	be.True(t, helper < global)
	be.True(t, global < main)
	be.True(t, strings.HasSuffix(out, "  ret void\n}\n\n"))
}

func TestRenderVerifies(t *testing.T) {
	b := NewBuffer()
	b.BeginFunc("i32", "f", []string{"i32"})
	slot := b.AllocSlot()
	b.Emit("store i32 %%0, i32* %s", slot)
	then, end := b.FreshLabel(), b.FreshLabel()
	v := b.FreshTemp()
	b.Emit("%s = load i32, i32* %s", v, slot)
	c := b.FreshTemp()
	b.Emit("%s = icmp sgt i32 %s, 0", c, v)
	b.CondBr(c, then, end)
	b.EmitLabel(then)
	b.Emit("call void @printi(i32 %s)", v)
	b.Br(end)
	b.EmitLabel(end)
	b.EndFunc("i32")

	mod, err := Verify("test.ll", b.Render())
	be.Err(t, err, nil)
	f := FindFunc(mod, "f")
	be.True(t, f != nil)
	be.Equal(t, len(CondBranches(f)), 1)
	calls := CallBlocks(f, "printi")
	be.Equal(t, len(calls), 1)
	be.True(t, Reachable(f)[calls[0]])
	be.True(t, !Reachable(f, calls[0])[calls[0]])
}

func TestAllocSlotGoesToEntryBlock(t *testing.T) {
	b := NewBuffer()
	b.BeginFunc("void", "main", nil)
	loop := b.FreshLabel()
	b.Br(loop)
	b.EmitLabel(loop)
	b.Comment("loop body")
	slot := b.AllocSlot()
	b.Emit("store i32 1, i32* %s", slot)
	b.Br(loop)
	b.EmitLabel(b.FreshLabel())
	b.EndFunc("void")

	out := b.Render()
	fn := out[strings.Index(out, "define void @main()"):]
	be.True(t, strings.HasPrefix(fn, "define void @main() {\n  "+slot+" = alloca i32\n  br label "+loop+"\n"))
	be.Equal(t, strings.Count(fn, "alloca"), 1)
	be.True(t, strings.Contains(fn, "label_0:\n  ; loop body\n  store i32 1"))

	mod, err := Verify("slots.ll", out)
	be.Err(t, err, nil)
	f := FindFunc(mod, "main")
	be.True(t, f != nil)
	be.True(t, len(f.Blocks) > 1)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	_, err := Verify("bad.ll", "define void @f() {\n  br label %nowhere\n}\n")
	be.Err(t, err)
}

func TestFuncName(t *testing.T) {
	be.Equal(t, FuncName("printf", false), "fanc.printf")
	be.Equal(t, FuncName("readi", false), "fanc.readi")
	be.Equal(t, FuncName("print", true), "print")
	be.Equal(t, FuncName("fib", false), "fib")
}
