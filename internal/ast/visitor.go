package ast

// Visitor walks the tree with one method per node group. The Walk
// functions implement the default traversal: they recurse into children
// through the visitor, so overriding one method and calling the matching
// Walk function from it resumes the default behavior below that node.
type Visitor interface {
	VisitModule(m *Module)
	VisitBinding(b *Binding)
	VisitExpr(e Expr)
	VisitAlternative(a *Alternative)
	VisitPattern(p Pattern)
}

// Base provides the default traversal for every node group. Embed it,
// point Self at the outer visitor and override the methods of interest.
type Base struct {
	Self Visitor
}

func (b *Base) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *Base) VisitModule(m *Module)           { WalkModule(b.self(), m) }
func (b *Base) VisitBinding(bind *Binding)      { WalkBinding(b.self(), bind) }
func (b *Base) VisitExpr(e Expr)                { WalkExpr(b.self(), e) }
func (b *Base) VisitAlternative(a *Alternative) { WalkAlternative(b.self(), a) }
func (b *Base) VisitPattern(p Pattern)          { WalkPattern(b.self(), p) }

// WalkModule visits instance bindings first, then the module's own
// bindings.
func WalkModule(v Visitor, m *Module) {
	for i := range m.Instances {
		for j := range m.Instances[i].Bindings {
			v.VisitBinding(&m.Instances[i].Bindings[j])
		}
	}
	for i := range m.Bindings {
		v.VisitBinding(&m.Bindings[i])
	}
}

func WalkBinding(v Visitor, b *Binding) {
	for _, arg := range b.Arguments {
		v.VisitPattern(arg)
	}
	v.VisitExpr(b.Body)
}

func WalkExpr(v Visitor, e Expr) {
	switch e := e.(type) {
	case *Apply:
		v.VisitExpr(e.Func)
		v.VisitExpr(e.Arg)
	case *Lambda:
		v.VisitExpr(e.Body)
	case *Let:
		for i := range e.Bindings {
			v.VisitBinding(&e.Bindings[i])
		}
		v.VisitExpr(e.Body)
	case *Case:
		v.VisitExpr(e.Expr)
		for i := range e.Alternatives {
			v.VisitAlternative(&e.Alternatives[i])
		}
	case *Do:
		for _, stmt := range e.Stmts {
			switch stmt := stmt.(type) {
			case *DoLet:
				for i := range stmt.Bindings {
					v.VisitBinding(&stmt.Bindings[i])
				}
			case *DoBind:
				v.VisitPattern(stmt.Pattern)
				v.VisitExpr(stmt.Expr)
			case *DoExpr:
				v.VisitExpr(stmt.Expr)
			}
		}
		v.VisitExpr(e.Result)
	case *TypeSig:
		v.VisitExpr(e.Expr)
	case *Identifier, *Literal:
		// Leaves.
	}
}

func WalkAlternative(v Visitor, a *Alternative) {
	v.VisitPattern(a.Pattern)
	v.VisitExpr(a.Expression)
}

func WalkPattern(v Visitor, p Pattern) {
	if ctor, ok := p.(*ConstructorPattern); ok {
		for _, arg := range ctor.Args {
			v.VisitPattern(arg)
		}
	}
}
