package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Single-line renderings for diagnostics and trace output. The
// prettyprinter package produces the indented multi-line form.

func (e *Identifier) String() string { return e.Id.String() }

func (e *Apply) String() string {
	return fmt.Sprintf("(%s %s)", e.Func, e.Arg)
}

func (e *Literal) String() string { return e.Value.String() }

func (e *Lambda) String() string {
	return fmt.Sprintf("(\\%s -> %s)", e.Arg, e.Body)
}

func (e *Let) String() string {
	var b strings.Builder
	b.WriteString("let {")
	for _, bind := range e.Bindings {
		fmt.Fprintf(&b, " %s;", &bind)
	}
	fmt.Fprintf(&b, " } in %s", e.Body)
	return b.String()
}

func (e *Case) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "case %s of {", e.Expr)
	for _, alt := range e.Alternatives {
		fmt.Fprintf(&b, " %s;", alt)
	}
	b.WriteString(" }")
	return b.String()
}

func (e *Do) String() string {
	var b strings.Builder
	b.WriteString("do {")
	for _, stmt := range e.Stmts {
		fmt.Fprintf(&b, " %s;", stmt)
	}
	fmt.Fprintf(&b, " %s }", e.Result)
	return b.String()
}

func (e *TypeSig) String() string {
	return fmt.Sprintf("(%s :: %s)", e.Expr, e.Type)
}

func (s *DoLet) String() string {
	var b strings.Builder
	b.WriteString("let {")
	for _, bind := range s.Bindings {
		fmt.Fprintf(&b, " %s;", &bind)
	}
	b.WriteString(" }")
	return b.String()
}

func (s *DoBind) String() string {
	return fmt.Sprintf("%s <- %s", s.Pattern, s.Expr)
}

func (s *DoExpr) String() string { return s.Expr.String() }

func (l Integral) String() string   { return strconv.FormatInt(l.Value, 10) }
func (l Fractional) String() string { return strconv.FormatFloat(l.Value, 'g', -1, 64) }
func (l Str) String() string        { return strconv.Quote(l.Value.String()) }
func (l CharLit) String() string    { return "'" + string(l.Value) + "'" }

func (p *NumberPattern) String() string     { return strconv.FormatInt(p.Value, 10) }
func (p *IdentifierPattern) String() string { return p.Id.String() }

func (p *ConstructorPattern) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(p.Name.String())
	for _, arg := range p.Args {
		b.WriteByte(' ')
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (p *WildcardPattern) String() string { return "_" }

func (a Alternative) String() string {
	return fmt.Sprintf("%s -> %s", a.Pattern, a.Expression)
}

func (b *Binding) String() string {
	var sb strings.Builder
	sb.WriteString(b.Name.String())
	for _, arg := range b.Arguments {
		sb.WriteByte(' ')
		sb.WriteString(arg.String())
	}
	fmt.Fprintf(&sb, " = %s", b.Body)
	return sb.String()
}
