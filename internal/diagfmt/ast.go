package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/sanity-io/litter"

	"fanc/internal/ast"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatASTTree prints the program as an indented tree.
func FormatASTTree(w io.Writer, builder *ast.Builder, prog *ast.Program) error {
	root := &treeNode{label: "Program"}
	for _, fn := range builder.View(prog) {
		root.children = append(root.children, fnNode(fn))
	}
	var b strings.Builder
	b.WriteString(root.label)
	b.WriteByte('\n')
	writeChildren(&b, root.children, "")
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatASTDump prints the nested view with litter, for debugging.
func FormatASTDump(w io.Writer, builder *ast.Builder, prog *ast.Program) error {
	opts := litter.Options{
		HidePrivateFields: true,
		StripPackageNames: true,
		Compact:           false,
	}
	_, err := fmt.Fprintln(w, opts.Sdump(builder.View(prog)))
	return err
}

func writeChildren(b *strings.Builder, nodes []*treeNode, prefix string) {
	for i, n := range nodes {
		last := i == len(nodes)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		b.WriteString(prefix)
		b.WriteString(branch)
		b.WriteString(n.label)
		b.WriteByte('\n')
		writeChildren(b, n.children, prefix+next)
	}
}

func fnNode(fn ast.FnView) *treeNode {
	n := &treeNode{label: fmt.Sprintf("Func %s(%s) %s", fn.Name, strings.Join(fn.Params, ", "), fn.Ret)}
	for _, st := range fn.Body {
		n.children = append(n.children, stmtNode(st))
	}
	return n
}

func stmtNode(st ast.StmtView) *treeNode {
	label := fmt.Sprintf("%s (line %d)", st.Kind, st.Line)
	switch {
	case st.Type != "":
		label += fmt.Sprintf(" %s %s", st.Type, st.Name)
	case st.Name != "":
		label += " " + st.Name
	}
	n := &treeNode{label: label}
	if st.Expr != nil {
		n.children = append(n.children, exprNode(*st.Expr))
	}
	for _, inner := range st.Body {
		n.children = append(n.children, stmtNode(inner))
	}
	if len(st.Else) > 0 {
		els := &treeNode{label: "Else"}
		for _, inner := range st.Else {
			els.children = append(els.children, stmtNode(inner))
		}
		n.children = append(n.children, els)
	}
	return n
}

func exprNode(e ast.ExprView) *treeNode {
	n := &treeNode{label: fmt.Sprintf("%s %s", e.Kind, e.Text)}
	for _, a := range e.Args {
		n.children = append(n.children, exprNode(a))
	}
	return n
}
