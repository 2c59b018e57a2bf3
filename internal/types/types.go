// Package types implements the polymorphic type and kind model of the
// Halcyon front end: the closed set of type variants, kind computation,
// the built-in type constructors, an alpha-equivalence-aware equality
// relation and the precedence-aware renderer used for diagnostics.
package types

import (
	"fmt"

	"github.com/halcyon-lang/halcyon/internal/interner"
)

// Type is the closed interface over the four type variants: TVar, TCon,
// TAp and TGen. Types are immutable trees; every node is exclusively
// owned by its parent and constructed once.
type Type interface {
	typeVariant()
	String() string
}

// TVar is a type variable (e.g. 'a'). Identity is the interned id alone:
// the kind is assumed consistent for equal ids, and Age only orders
// variables by freshness.
type TVar struct {
	ID   interner.Symbol
	Kind Kind
	Age  int
}

func (TVar) typeVariant() {}

// KindOrStar returns the variable's kind, defaulting a zero value to *.
func (v TVar) KindOrStar() Kind {
	if v.Kind == nil {
		return Star
	}
	return v.Kind
}

// SameVar reports whether two variables denote the same identifier.
func (v TVar) SameVar(o TVar) bool { return v.ID == o.ID }

// TCon is a type constructor (e.g. Int :: *, [] :: * -> *).
type TCon struct {
	Name interner.Symbol
	Kind Kind
}

func (TCon) typeVariant() {}

// KindOrStar returns the constructor's kind, defaulting a zero value to *.
func (c TCon) KindOrStar() Kind {
	if c.Kind == nil {
		return Star
	}
	return c.Kind
}

// TAp is a binary, left-associative type application.
// a -> b is encoded as TAp{TAp{TCon"->", a}, b}.
type TAp struct {
	Fn  Type
	Arg Type
}

func (TAp) typeVariant() {}

// TGen is a variable explicitly marked universally quantified, used for
// schematic signatures such as tuple constructors.
type TGen struct {
	Var TVar
}

func (TGen) typeVariant() {}

// MalformedTypeError reports an internal invariant violated while
// unwrapping or kinding a type. It indicates a defect in an earlier pass,
// not a user error; the rendered type is carried for debugging.
type MalformedTypeError struct {
	Type Type
	Want string
}

func (e *MalformedTypeError) Error() string {
	return fmt.Sprintf("malformed type: expected %s, found %s", e.Want, e.Type)
}

// VarOf unwraps t as a type variable.
func VarOf(t Type) (TVar, error) {
	if v, ok := t.(TVar); ok {
		return v, nil
	}
	return TVar{}, &MalformedTypeError{Type: t, Want: "a type variable"}
}

// CtorOf unwraps t as a type constructor.
func CtorOf(t Type) (TCon, error) {
	if c, ok := t.(TCon); ok {
		return c, nil
	}
	return TCon{}, &MalformedTypeError{Type: t, Want: "a type constructor"}
}

// ApplyLeft unwraps t as an application and returns the applied type.
func ApplyLeft(t Type) (Type, error) {
	if ap, ok := t.(TAp); ok {
		return ap.Fn, nil
	}
	return nil, &MalformedTypeError{Type: t, Want: "a type application"}
}

// ApplyRight unwraps t as an application and returns the argument type.
func ApplyRight(t Type) (Type, error) {
	if ap, ok := t.(TAp); ok {
		return ap.Arg, nil
	}
	return nil, &MalformedTypeError{Type: t, Want: "a type application"}
}

// KindOf computes the kind of t. An application whose operand does not
// have an arrow kind is malformed.
func KindOf(t Type) (Kind, error) {
	switch t := t.(type) {
	case TVar:
		return t.KindOrStar(), nil
	case TCon:
		return t.KindOrStar(), nil
	case TGen:
		return t.Var.KindOrStar(), nil
	case TAp:
		k, err := KindOf(t.Fn)
		if err != nil {
			return nil, err
		}
		arrow, ok := k.(KArrow)
		if !ok {
			return nil, &MalformedTypeError{Type: t, Want: "an arrow kind on the applied type"}
		}
		return arrow.Right, nil
	}
	return nil, &MalformedTypeError{Type: t, Want: "a known type variant"}
}

// ExtractAppliedType follows applications to the left and returns the
// head of the application spine (the data type's own constructor for a
// fully applied data type).
func ExtractAppliedType(t Type) Type {
	for {
		ap, ok := t.(TAp)
		if !ok {
			return t
		}
		t = ap.Fn
	}
}

// TryGetFunction recognizes the two-level application pattern whose head
// is the -> constructor. It returns the argument and result types, and
// reports whether t is a function type.
func TryGetFunction(t Type) (arg, result Type, ok bool) {
	outer, ok := t.(TAp)
	if !ok {
		return nil, nil, false
	}
	inner, ok := outer.Fn.(TAp)
	if !ok {
		return nil, nil, false
	}
	con, ok := inner.Fn.(TCon)
	if !ok || con.Name != arrowName {
		return nil, nil, false
	}
	return inner.Arg, outer.Arg, true
}

// ArgIterator peels the argument types off a curried function type in
// left-to-right order, terminating at the first non-arrow residue. After
// the iterator is exhausted, Typ holds the residue (for a constructor's
// type, the data type itself). The number of peeled arguments is the
// constructor's arity.
type ArgIterator struct {
	Typ Type
}

func (it *ArgIterator) Next() (Type, bool) {
	arg, rest, ok := TryGetFunction(it.Typ)
	if !ok {
		return nil, false
	}
	it.Typ = rest
	return arg, true
}
