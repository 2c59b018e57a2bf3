package deriving

// A minimal evaluator for generated method bodies. It understands exactly
// the node kinds and primitives the engine emits (identifiers, nested
// application, lambdas, case dispatch, ==, &&, compare and
// #compare_tags), which is enough to check the semantics of derived
// bindings without the real backend.

import (
	"testing"

	"github.com/halcyon-lang/halcyon/internal/ast"
	"github.com/halcyon-lang/halcyon/internal/names"
)

type value interface{}

type intValue int64

type boolValue bool

type ordValue string

type ctorValue struct {
	name   string
	tag    int
	fields []value
}

type closureValue struct {
	arg  ast.Id
	body ast.Expr
	env  *environment
}

type builtinValue struct {
	name string
	args []value
}

type environment struct {
	parent *environment
	vars   map[names.Name]value
}

func newEnv(parent *environment) *environment {
	return &environment{parent: parent, vars: make(map[names.Name]value)}
}

func (e *environment) lookup(n names.Name) (value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[n]; ok {
			return v, true
		}
	}
	return nil, false
}

func eval(t *testing.T, e ast.Expr, env *environment) value {
	t.Helper()
	switch e := e.(type) {
	case *ast.Identifier:
		if v, ok := env.lookup(e.Id.Name); ok {
			return v
		}
		switch name := e.Id.Name.String(); name {
		case "True":
			return boolValue(true)
		case "False":
			return boolValue(false)
		case "LT", "EQ", "GT":
			return ordValue(name)
		default:
			return &builtinValue{name: name}
		}
	case *ast.Apply:
		fn := eval(t, e.Func, env)
		arg := eval(t, e.Arg, env)
		return apply(t, fn, arg)
	case *ast.Lambda:
		return &closureValue{arg: e.Arg, body: e.Body, env: env}
	case *ast.Literal:
		lit, ok := e.Value.(ast.Integral)
		if !ok {
			t.Fatalf("unexpected literal in generated code: %s", e)
		}
		return intValue(lit.Value)
	case *ast.Case:
		scrutinee := eval(t, e.Expr, env)
		for i := range e.Alternatives {
			child := newEnv(env)
			if match(e.Alternatives[i].Pattern, scrutinee, child) {
				return eval(t, e.Alternatives[i].Expression, child)
			}
		}
		t.Fatalf("no alternative matched %v in %s", scrutinee, e)
	default:
		t.Fatalf("unexpected node in generated code: %s", e)
	}
	return nil
}

func apply(t *testing.T, fn value, arg value) value {
	t.Helper()
	switch fn := fn.(type) {
	case *closureValue:
		env := newEnv(fn.env)
		env.vars[fn.arg.Name] = arg
		return eval(t, fn.body, env)
	case *builtinValue:
		args := append(append([]value{}, fn.args...), arg)
		if len(args) < 2 {
			return &builtinValue{name: fn.name, args: args}
		}
		return applyBuiltin(t, fn.name, args[0], args[1])
	default:
		t.Fatalf("applied non-function value %v", fn)
		return nil
	}
}

func applyBuiltin(t *testing.T, name string, lhs, rhs value) value {
	t.Helper()
	switch name {
	case "==":
		return boolValue(lhs == rhs)
	case "&&":
		return boolValue(lhs.(boolValue) && rhs.(boolValue))
	case "compare":
		l, r := lhs.(intValue), rhs.(intValue)
		switch {
		case l < r:
			return ordValue("LT")
		case l > r:
			return ordValue("GT")
		default:
			return ordValue("EQ")
		}
	case "#compare_tags":
		l, r := lhs.(*ctorValue), rhs.(*ctorValue)
		switch {
		case l.tag < r.tag:
			return ordValue("LT")
		case l.tag > r.tag:
			return ordValue("GT")
		default:
			return ordValue("EQ")
		}
	default:
		t.Fatalf("unknown primitive %q in generated code", name)
		return nil
	}
}

func match(p ast.Pattern, v value, env *environment) bool {
	switch p := p.(type) {
	case *ast.WildcardPattern:
		return true
	case *ast.IdentifierPattern:
		env.vars[p.Id.Name] = v
		return true
	case *ast.NumberPattern:
		n, ok := v.(intValue)
		return ok && int64(n) == p.Value
	case *ast.ConstructorPattern:
		switch v := v.(type) {
		case ordValue:
			return len(p.Args) == 0 && p.Name.Name.String() == string(v)
		case *ctorValue:
			if p.Name.Name.String() != v.name || len(p.Args) != len(v.fields) {
				return false
			}
			for i, arg := range p.Args {
				if !match(arg, v.fields[i], env) {
					return false
				}
			}
			return true
		}
	}
	return false
}

// callBinary evaluates a derived two-argument binding on two values.
func callBinary(t *testing.T, b *ast.Binding, lhs, rhs value) value {
	t.Helper()
	fn := eval(t, b.Body, newEnv(nil))
	return apply(t, apply(t, fn, lhs), rhs)
}

func mkCtor(name string, tag int, fields ...value) *ctorValue {
	return &ctorValue{name: name, tag: tag, fields: fields}
}
