// Package prettyprinter renders bindings and expressions as indented,
// source-like text. The output is a debugging aid for inspecting
// generated code and carries no compatibility guarantee.
package prettyprinter

import (
	"bytes"
	"fmt"

	"github.com/halcyon-lang/halcyon/internal/ast"
)

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// PrintBinding renders one binding as a type signature line followed by
// the definition.
func (p *CodePrinter) PrintBinding(b *ast.Binding) string {
	p.buf.Reset()
	p.indent = 0
	fmt.Fprintf(&p.buf, "%s :: %s\n", b.Name, b.Name.Type)
	p.buf.WriteString(b.Name.String())
	for _, arg := range b.Arguments {
		p.buf.WriteByte(' ')
		p.buf.WriteString(arg.String())
	}
	p.buf.WriteString(" = ")
	p.printExpr(b.Body)
	p.buf.WriteByte('\n')
	return p.buf.String()
}

// PrintExpr renders a standalone expression.
func (p *CodePrinter) PrintExpr(e ast.Expr) string {
	p.buf.Reset()
	p.indent = 0
	p.printExpr(e)
	return p.buf.String()
}

func (p *CodePrinter) newline() {
	p.buf.WriteByte('\n')
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
}

func (p *CodePrinter) printExpr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Identifier:
		p.buf.WriteString(e.Id.String())
	case *ast.Literal:
		p.buf.WriteString(e.Value.String())
	case *ast.Apply:
		p.printApplied(e.Func)
		p.buf.WriteByte(' ')
		p.printAtom(e.Arg)
	case *ast.Lambda:
		fmt.Fprintf(&p.buf, "\\%s ->", e.Arg)
		p.indent++
		p.newline()
		p.printExpr(e.Body)
		p.indent--
	case *ast.Let:
		p.buf.WriteString("let")
		p.indent++
		for i := range e.Bindings {
			p.newline()
			p.buf.WriteString(e.Bindings[i].Name.String())
			p.buf.WriteString(" = ")
			p.printExpr(e.Bindings[i].Body)
		}
		p.indent--
		p.newline()
		p.buf.WriteString("in ")
		p.printExpr(e.Body)
	case *ast.Case:
		p.buf.WriteString("case ")
		p.printAtom(e.Expr)
		p.buf.WriteString(" of")
		p.indent++
		for i := range e.Alternatives {
			p.newline()
			p.buf.WriteString(e.Alternatives[i].Pattern.String())
			p.buf.WriteString(" -> ")
			p.printExpr(e.Alternatives[i].Expression)
		}
		p.indent--
	case *ast.Do:
		p.buf.WriteString("do")
		p.indent++
		for _, stmt := range e.Stmts {
			p.newline()
			p.buf.WriteString(stmt.String())
		}
		p.newline()
		p.printExpr(e.Result)
		p.indent--
	case *ast.TypeSig:
		p.buf.WriteByte('(')
		p.printExpr(e.Expr)
		fmt.Fprintf(&p.buf, " :: %s)", e.Type)
	}
}

// printApplied renders the function position of an application: nested
// applications stay flat, anything compound gets parentheses.
func (p *CodePrinter) printApplied(e ast.Expr) {
	switch e.(type) {
	case *ast.Identifier, *ast.Literal, *ast.Apply:
		p.printExpr(e)
	default:
		p.buf.WriteByte('(')
		p.printExpr(e)
		p.buf.WriteByte(')')
	}
}

// printAtom parenthesizes everything that is not already atomic.
func (p *CodePrinter) printAtom(e ast.Expr) {
	switch e.(type) {
	case *ast.Identifier, *ast.Literal:
		p.printExpr(e)
	default:
		p.buf.WriteByte('(')
		p.printExpr(e)
		p.buf.WriteByte(')')
	}
}
