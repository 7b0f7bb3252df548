// Package llvm is the textual IR emitter. It hands out fresh temporaries and
// labels, pools string constants, and renders a module made of the fixed
// runtime support followed by the lowered FanC functions. The dialect is
// LLVM assembly with typed pointers, so output can be checked with llir.
package llvm
