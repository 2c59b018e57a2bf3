package types

import "strings"

// Rendering follows three precedence tiers: top, function arrow and
// constructor application. Arrows are right-associative and print
// unparenthesized at top level; list applications use the [T] sugar.
// The output is a debugging aid, not a parsed format.

type prec int

const (
	precTop prec = iota
	precFunction
	precConstructor
)

func (v TVar) String() string { return v.ID.String() }

func (c TCon) String() string { return c.Name.String() }

func (g TGen) String() string { return `\#` + g.Var.ID.String() }

func (ap TAp) String() string {
	var b strings.Builder
	writeType(&b, ap, precTop)
	return b.String()
}

func writeType(b *strings.Builder, t Type, p prec) {
	ap, ok := t.(TAp)
	if !ok {
		b.WriteString(t.String())
		return
	}

	if arg, result, ok := TryGetFunction(ap); ok {
		if p >= precFunction {
			b.WriteByte('(')
			writeType(b, arg, precTop)
			b.WriteString(" -> ")
			writeType(b, result, precTop)
			b.WriteByte(')')
		} else {
			writeType(b, arg, precFunction)
			b.WriteString(" -> ")
			writeType(b, result, precTop)
		}
		return
	}

	if con, ok := ap.Fn.(TCon); ok && con.Name == listName {
		b.WriteByte('[')
		writeType(b, ap.Arg, precTop)
		b.WriteByte(']')
		return
	}

	if p >= precConstructor {
		b.WriteByte('(')
		writeType(b, ap.Fn, precFunction)
		b.WriteByte(' ')
		writeType(b, ap.Arg, precConstructor)
		b.WriteByte(')')
	} else {
		writeType(b, ap.Fn, precFunction)
		b.WriteByte(' ')
		writeType(b, ap.Arg, precConstructor)
	}
}
