// Package deriving synthesizes typeclass method bindings from the shape
// of an algebraic data type. For every class a data definition derives,
// the engine appends one top-level binding whose body is built from
// plain AST nodes; later passes cannot tell it apart from hand-written
// source.
//
// The supported classes are the closed allow-list in
// config.DerivableClasses: Eq (structural equality) and Ord (total order
// with constructor declaration position as the primary key).
package deriving

import (
	"fmt"

	"github.com/halcyon-lang/halcyon/internal/ast"
	"github.com/halcyon-lang/halcyon/internal/config"
	"github.com/halcyon-lang/halcyon/internal/diag"
	"github.com/halcyon-lang/halcyon/internal/interner"
	"github.com/halcyon-lang/halcyon/internal/names"
	"github.com/halcyon-lang/halcyon/internal/types"
)

// UnsupportedDerivationError reports a derivation request outside the
// allow-list. It is a fatal configuration error: processing of the data
// type's remaining derivations stops and no binding is emitted for the
// offending class.
type UnsupportedDerivationError struct {
	Class interner.Symbol
}

func (e *UnsupportedDerivationError) Error() string {
	return fmt.Sprintf("cannot generate instance for class %s", e.Class)
}

// GenerateDeriving appends one synthesized binding per class the data
// definition derives. Derivations are processed strictly in declaration
// order; the engine owns a fresh-name supply, so two engines must not
// interleave over shared program state.
func GenerateDeriving(bindings *[]ast.Binding, data *ast.DataDefinition) error {
	gen := &generator{supply: names.NewSupply()}
	for _, class := range data.Deriving {
		switch class.String() {
		case "Eq":
			b, err := gen.generateEq(data)
			if err != nil {
				return err
			}
			*bindings = append(*bindings, b)
		case "Ord":
			b, err := gen.generateOrd(data)
			if err != nil {
				return err
			}
			diag.Tracef("generated Ord %s ->>\n%s", data.Typ.Value, &b)
			*bindings = append(*bindings, b)
		default:
			return &UnsupportedDerivationError{Class: class}
		}
	}
	return nil
}

type generator struct {
	supply *names.Supply
}

func (g *generator) generateEq(data *ast.DataDefinition) (ast.Binding, error) {
	return g.makeBinop(config.EqFuncName, data, func(idL, idR ast.Id) ast.Expr {
		alts := g.matchSameConstructors(data, idR, g.eqFields)
		return &ast.Case{Expr: &ast.Identifier{Id: idL}, Alternatives: alts}
	})
}

// eqFields folds the pairwise field equalities together with &&, starting
// from the first pair. No fields means the constructors alone decide:
// the result is the literal True.
func (g *generator) eqFields(argsL, argsR []ast.Id) ast.Expr {
	if len(argsL) == 0 {
		return trueExpr()
	}
	acc := boolBinop(config.EqFuncName, identifier(argsL[0]), identifier(argsR[0]))
	for i := 1; i < len(argsL); i++ {
		test := boolBinop(config.EqFuncName, identifier(argsL[i]), identifier(argsR[i]))
		acc = boolBinop(config.AndFuncName, acc, test)
	}
	return acc
}

func (g *generator) generateOrd(data *ast.DataDefinition) (ast.Binding, error) {
	return g.makeBinop(config.CompareFuncName, data, func(idL, idR ast.Id) ast.Expr {
		// Compare the constructor tags first: declaration position is
		// the primary key, so field comparison only runs when the tags
		// tie. This also makes the constructor-mismatch arm inside
		// matchSameConstructors unreachable for Ord; it is kept there
		// for the shared shape with Eq.
		whenEq := &ast.Case{
			Expr:         &ast.Identifier{Id: idL},
			Alternatives: g.matchSameConstructors(data, idR, g.ordFields),
		}
		cmp := compareTags(identifier(idL), identifier(idR))
		return g.eqOrDefault(cmp, whenEq)
	})
}

// ordFields folds the field comparisons right to left: the innermost
// expression compares the last field pair, and each earlier pair wraps
// the accumulated result as the EQ branch of eqOrDefault. Earlier fields
// are therefore evaluated first and dominate: lexicographic order with
// the first field most significant. No fields means the tags already
// tied, so the result is EQ.
func (g *generator) ordFields(argsL, argsR []ast.Id) ast.Expr {
	ordering := types.OrderingType()
	if len(argsL) == 0 {
		return identifier(primitiveID(config.EQCtorName, ordering))
	}
	last := len(argsL) - 1
	acc := binop(config.CompareFuncName, identifier(argsL[last]), identifier(argsR[last]), ordering)
	for i := last - 1; i >= 0; i-- {
		test := binop(config.CompareFuncName, identifier(argsL[i]), identifier(argsR[i]), ordering)
		acc = g.eqOrDefault(test, acc)
	}
	return acc
}

// makeBinop builds a binary method binding named for the data type and
// the operator. Both parameters receive the data type's own qualified
// type: the constraints are copied verbatim from the data definition
// rather than recomputed per field type, a known approximation that
// downstream passes currently rely on.
func (g *generator) makeBinop(op string, data *ast.DataDefinition, body func(idL, idR ast.Id) ast.Expr) (ast.Binding, error) {
	argL := g.supply.Anonymous()
	argR := g.supply.Anonymous()
	idL := ast.Id{Name: argL, Type: data.Typ}
	idR := ast.Id{Name: argR, Type: data.Typ}
	expr := body(idL, idR)
	lambda := ast.Expr(&ast.Lambda{Arg: idL, Body: &ast.Lambda{Arg: idR, Body: expr}})

	dataCon, err := types.CtorOf(types.ExtractAppliedType(data.Typ.Value))
	if err != nil {
		return ast.Binding{}, err
	}
	name := ast.EncodeBindingIdentifier(dataCon.Name, interner.Intern(op))
	typ, err := ast.ExprType(lambda)
	if err != nil {
		return ast.Binding{}, err
	}
	return ast.Binding{
		Name: ast.NewId(names.Name{Sym: name}, typ, nil),
		Body: lambda,
	}, nil
}

// eqOrDefault evaluates cmp; when it is EQ the default expression
// decides, otherwise the non-EQ result passes through unchanged via a
// bound wildcard alternative.
func (g *generator) eqOrDefault(cmp, def ast.Expr) ast.Expr {
	ordering := types.OrderingType()
	matchID := ast.NewId(g.supply.Anonymous(), ordering, nil)
	return &ast.Case{
		Expr: cmp,
		Alternatives: []ast.Alternative{
			{
				Pattern:    &ast.ConstructorPattern{Name: primitiveID(config.EQCtorName, ordering)},
				Expression: def,
			},
			{
				Pattern:    &ast.IdentifierPattern{Id: matchID},
				Expression: &ast.Identifier{Id: matchID},
			},
		},
	}
}

// matchSameConstructors builds one alternative per constructor: the left
// value must match the constructor, then an inner case requires the
// right value to match the same constructor (with independently bound
// fresh field identifiers) before f combines the field pairs; any other
// right-hand constructor falls to the wildcard arm yielding False.
func (g *generator) matchSameConstructors(data *ast.DataDefinition, idR ast.Id, f func(argsL, argsR []ast.Id) ast.Expr) []ast.Alternative {
	alts := make([]ast.Alternative, 0, len(data.Constructors))
	for i := range data.Constructors {
		ctor := &data.Constructors[i]
		argsL := g.constructorFields(ctor)
		argsR := g.constructorFields(ctor)

		it := types.ArgIterator{Typ: ctor.Typ.Value}
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
		ctorID := ast.NewId(ctor.Name, it.Typ, ctor.Typ.Constraints)

		expr := f(argsL, argsR)
		inner := &ast.Case{
			Expr: &ast.Identifier{Id: idR},
			Alternatives: []ast.Alternative{
				{
					Pattern:    &ast.ConstructorPattern{Name: ctorID, Args: bindPatterns(argsR)},
					Expression: expr,
				},
				{
					Pattern:    &ast.WildcardPattern{},
					Expression: falseExpr(),
				},
			},
		}
		alts = append(alts, ast.Alternative{
			Pattern:    &ast.ConstructorPattern{Name: ctorID, Args: bindPatterns(argsL)},
			Expression: inner,
		})
	}
	return alts
}

// constructorFields allocates one fresh identifier per field by peeling
// the constructor's curried type; the peeled argument types become the
// identifiers' types.
func (g *generator) constructorFields(ctor *ast.Constructor) []ast.Id {
	it := types.ArgIterator{Typ: ctor.Typ.Value}
	var ids []ast.Id
	for {
		arg, ok := it.Next()
		if !ok {
			return ids
		}
		ids = append(ids, ast.NewId(g.supply.Anonymous(), arg, ctor.Typ.Constraints))
	}
}

func bindPatterns(ids []ast.Id) []ast.Pattern {
	patterns := make([]ast.Pattern, len(ids))
	for i, id := range ids {
		patterns[i] = &ast.IdentifierPattern{Id: id}
	}
	return patterns
}

func identifier(id ast.Id) ast.Expr {
	return &ast.Identifier{Id: id}
}

// primitiveID names a primitive with UID 0; the text alone is unique.
func primitiveID(name string, typ types.Type) ast.Id {
	return ast.NewId(names.FromString(name), typ, nil)
}

func trueExpr() ast.Expr {
	return identifier(primitiveID(config.TrueCtorName, types.BoolType()))
}

func falseExpr() ast.Expr {
	return identifier(primitiveID(config.FalseCtorName, types.BoolType()))
}

// compareTags applies the builtin that orders two values by their
// constructor discriminants (declaration positions).
func compareTags(lhs, rhs ast.Expr) ast.Expr {
	a := types.NewVar(interner.Intern("a"))
	typ := types.FunctionType(a, types.FunctionType(a, types.OrderingType()))
	cmp := identifier(primitiveID(config.CompareTagsFuncName, typ))
	return &ast.Apply{Func: &ast.Apply{Func: cmp, Arg: lhs}, Arg: rhs}
}

func boolBinop(op string, lhs, rhs ast.Expr) ast.Expr {
	return binop(op, lhs, rhs, types.BoolType())
}

func binop(op string, lhs, rhs ast.Expr, returnType types.Type) ast.Expr {
	typ := types.FunctionType(mustExprType(lhs), types.FunctionType(mustExprType(rhs), returnType))
	f := identifier(primitiveID(op, typ))
	return &ast.Apply{Func: &ast.Apply{Func: f, Arg: lhs}, Arg: rhs}
}

// mustExprType reads the type of a generated subexpression. The engine
// only ever passes identifiers it typed itself, so failure is an
// internal invariant violation.
func mustExprType(e ast.Expr) types.Type {
	t, err := ast.ExprType(e)
	if err != nil {
		panic(err)
	}
	return t
}
