package types

import (
	"fmt"
	"strings"

	"github.com/halcyon-lang/halcyon/internal/config"
	"github.com/halcyon-lang/halcyon/internal/interner"
)

var (
	arrowName = interner.Intern(config.ArrowTypeName)
	listName  = interner.Intern(config.ListTypeName)
)

// NewVar creates a type variable of kind *.
func NewVar(id interner.Symbol) Type {
	return TVar{ID: id, Kind: Star}
}

// NewVarKind creates a type variable with the given kind.
func NewVarKind(id interner.Symbol, kind Kind) Type {
	return TVar{ID: id, Kind: kind}
}

// NewVarArgs builds a variable applied to type arguments, giving the
// variable the kind arity matching the application.
func NewVarArgs(id interner.Symbol, args ...Type) Type {
	result := Type(TVar{ID: id, Kind: KindFromArity(len(args) + 1)})
	for _, arg := range args {
		result = TAp{Fn: result, Arg: arg}
	}
	return result
}

// NewOp builds a fully-applied constructor type. The constructor's kind
// is derived from the number of arguments, so the kind arity always
// matches the application.
func NewOp(name interner.Symbol, args ...Type) Type {
	return NewOpKind(name, KindFromArity(len(args)+1), args...)
}

// NewOpKind builds an applied constructor type with an explicit kind.
func NewOpKind(name interner.Symbol, kind Kind, args ...Type) Type {
	result := Type(TCon{Name: name, Kind: kind})
	for _, arg := range args {
		result = TAp{Fn: result, Arg: arg}
	}
	return result
}

// FunctionType creates the function type arg -> result.
func FunctionType(arg, result Type) Type {
	return NewOp(arrowName, arg, result)
}

// ListType creates a list type holding elements of typ.
func ListType(typ Type) Type {
	return NewOp(listName, typ)
}

// CharType returns the Char type.
func CharType() Type {
	return NewOp(interner.Intern(config.CharTypeName))
}

// IntType returns the Int type.
func IntType() Type {
	return NewOp(interner.Intern(config.IntTypeName))
}

// BoolType returns the Bool type.
func BoolType() Type {
	return NewOp(interner.Intern(config.BoolTypeName))
}

// DoubleType returns the Double type.
func DoubleType() Type {
	return NewOp(interner.Intern(config.DoubleTypeName))
}

// OrderingType returns the Ordering type.
func OrderingType() Type {
	return NewOp(interner.Intern(config.OrderingTypeName))
}

// IO creates an IO type around typ.
func IO(typ Type) Type {
	return NewOp(interner.Intern(config.IOTypeName), typ)
}

// Unit returns the unit type ().
func Unit() Type {
	return NewOp(interner.Intern(config.UnitTypeName))
}

// TupleName constructs the name of an n-tuple: () for 0, (,) for 2,
// (,,) for 3 and so on.
func TupleName(n int) string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 1; i < n; i++ {
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return b.String()
}

// TupleType returns the curried constructor type of an n-tuple along
// with the tuple's name. The elements are n distinct single-letter
// schematic variables a..z, which caps the supported arity at 25; the
// cap is an invariant of the naming scheme, not a user-facing limit.
func TupleType(n int) (string, Type) {
	if n >= 26 {
		panic(fmt.Sprintf("tuple arity %d exceeds the single-letter variable scheme", n))
	}
	vars := make([]Type, n)
	for i := 0; i < n; i++ {
		id := interner.Intern(string(rune('a' + i)))
		vars[i] = TGen{Var: TVar{ID: id, Kind: Star}}
	}
	name := TupleName(n)
	typ := NewOp(interner.Intern(name), vars...)
	for i := n - 1; i >= 0; i-- {
		id := interner.Intern(string(rune('a' + i)))
		typ = FunctionType(TGen{Var: TVar{ID: id, Kind: Star}}, typ)
	}
	return name, typ
}
