package llvm

import (
	"fmt"

	"github.com/llir/llvm/asm"
	"github.com/llir/llvm/ir"
)

// Verify parses rendered IR with llir. A parse failure means the emitter
// produced malformed output: a block without a terminator, a phi naming a
// label that does not exist, or a type error in an instruction.
func Verify(name, text string) (*ir.Module, error) {
	mod, err := asm.ParseString(name, text)
	if err != nil {
		return nil, fmt.Errorf("verify %s: %w", name, err)
	}
	return mod, nil
}

// FindFunc returns the function with the given IR name, or nil.
func FindFunc(mod *ir.Module, name string) *ir.Func {
	for _, f := range mod.Funcs {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// CallBlocks lists the blocks of f that call callee (an IR name without @).
func CallBlocks(f *ir.Func, callee string) []*ir.Block {
	var out []*ir.Block
	for _, b := range f.Blocks {
		for _, inst := range b.Insts {
			call, ok := inst.(*ir.InstCall)
			if ok && call.Callee.Ident() == "@"+callee {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

// CondBranches lists the blocks of f that end in a conditional branch.
func CondBranches(f *ir.Func) []*ir.Block {
	var out []*ir.Block
	for _, b := range f.Blocks {
		if _, ok := b.Term.(*ir.TermCondBr); ok {
			out = append(out, b)
		}
	}
	return out
}

// Reachable returns the blocks reachable from the entry of f without passing
// through any block in cut.
func Reachable(f *ir.Func, cut ...*ir.Block) map[*ir.Block]bool {
	seen := make(map[*ir.Block]bool, len(f.Blocks))
	if len(f.Blocks) == 0 {
		return seen
	}
	blocked := make(map[*ir.Block]bool, len(cut))
	for _, b := range cut {
		blocked[b] = true
	}
	stack := []*ir.Block{f.Blocks[0]}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[b] || blocked[b] {
			continue
		}
		seen[b] = true
		if b.Term == nil {
			continue
		}
		stack = append(stack, b.Term.Succs()...)
	}
	return seen
}
