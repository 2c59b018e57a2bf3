package types

import (
	"strings"
	"testing"

	"github.com/halcyon-lang/halcyon/internal/interner"
)

func variable(name string) Type {
	return NewVar(interner.Intern(name))
}

func TestTryGetFunction(t *testing.T) {
	fn := FunctionType(IntType(), BoolType())
	arg, result, ok := TryGetFunction(fn)
	if !ok {
		t.Fatalf("Int -> Bool not recognized as a function type")
	}
	if arg.String() != "Int" || result.String() != "Bool" {
		t.Errorf("TryGetFunction = (%s, %s), want (Int, Bool)", arg, result)
	}

	if _, _, ok := TryGetFunction(IntType()); ok {
		t.Errorf("Int recognized as a function type")
	}
	if _, _, ok := TryGetFunction(ListType(IntType())); ok {
		t.Errorf("[Int] recognized as a function type")
	}
}

func TestArgIterator(t *testing.T) {
	// Constructor type: Int -> Bool -> Pair
	pair := NewOp(interner.Intern("Pair"))
	ctorType := FunctionType(IntType(), FunctionType(BoolType(), pair))

	it := ArgIterator{Typ: ctorType}
	var got []string
	for {
		arg, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, arg.String())
	}
	if strings.Join(got, ",") != "Int,Bool" {
		t.Errorf("peeled arguments = %v, want [Int Bool]", got)
	}
	if it.Typ.String() != "Pair" {
		t.Errorf("residue = %s, want Pair", it.Typ)
	}
}

func TestArgIteratorZeroArity(t *testing.T) {
	unit := NewOp(interner.Intern("MkUnit"))
	it := ArgIterator{Typ: unit}
	if _, ok := it.Next(); ok {
		t.Errorf("nullary constructor type yielded an argument")
	}
}

func TestDisplay(t *testing.T) {
	a := variable("a")
	b := variable("b")

	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"variable", a, "a"},
		{"constructor", IntType(), "Int"},
		{"function", FunctionType(a, b), "a -> b"},
		{"function right assoc", FunctionType(a, FunctionType(b, a)), "a -> b -> a"},
		{"function argument parenthesized", FunctionType(FunctionType(a, b), a), "(a -> b) -> a"},
		{"list", ListType(IntType()), "[Int]"},
		{"list of functions", ListType(FunctionType(a, b)), "[a -> b]"},
		{"application", NewOp(interner.Intern("Maybe"), a), "Maybe a"},
		{"nested application argument", NewOp(interner.Intern("Maybe"), NewOp(interner.Intern("Maybe"), a)), "Maybe (Maybe a)"},
		{"application in arrow", FunctionType(NewOp(interner.Intern("Maybe"), a), b), "Maybe a -> b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQualifiedDisplay(t *testing.T) {
	a := TVar{ID: interner.Intern("a"), Kind: Star}
	q := Qualify([]Constraint{{Class: interner.Intern("Eq"), Variables: []TVar{a}}}, ListType(a))
	if got := q.String(); got != "Eq a => [a]" {
		t.Errorf("Qualified.String() = %q, want %q", got, "Eq a => [a]")
	}

	plain := Qualify(nil, IntType())
	if got := plain.String(); got != "Int" {
		t.Errorf("unconstrained Qualified.String() = %q, want Int", got)
	}
}

func TestTupleName(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "()"},
		{1, "()"},
		{2, "(,)"},
		{3, "(,,)"},
	}
	for _, tt := range tests {
		if got := TupleName(tt.n); got != tt.want {
			t.Errorf("TupleName(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestTupleType(t *testing.T) {
	name, typ := TupleType(2)
	if name != "(,)" {
		t.Errorf("TupleType(2) name = %q, want (,)", name)
	}

	// Curried constructor: two peelable arguments, residue is the tuple.
	it := ArgIterator{Typ: typ}
	count := 0
	for {
		if _, ok := it.Next(); !ok {
			break
		}
		count++
	}
	if count != 2 {
		t.Errorf("TupleType(2) has %d curried arguments, want 2", count)
	}
	head := ExtractAppliedType(it.Typ)
	con, err := CtorOf(head)
	if err != nil {
		t.Fatalf("tuple residue head is not a constructor: %v", err)
	}
	if con.Name.String() != "(,)" {
		t.Errorf("tuple residue constructor = %s, want (,)", con.Name)
	}
}

func TestTupleTypeArityCeiling(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("TupleType(26) should panic: the single-letter scheme ends at z")
		}
	}()
	TupleType(26)
}

func TestUnwrapErrors(t *testing.T) {
	if _, err := CtorOf(variable("a")); err == nil {
		t.Errorf("CtorOf(a) should fail")
	} else if !strings.Contains(err.Error(), "a type constructor") {
		t.Errorf("CtorOf error %q should name the expected variant", err)
	}
	if _, err := VarOf(IntType()); err == nil {
		t.Errorf("VarOf(Int) should fail")
	}
	if _, err := ApplyLeft(IntType()); err == nil {
		t.Errorf("ApplyLeft(Int) should fail")
	}
	if _, err := ApplyRight(IntType()); err == nil {
		t.Errorf("ApplyRight(Int) should fail")
	}
}

func TestExtractAppliedType(t *testing.T) {
	a := variable("a")
	tree := NewOp(interner.Intern("Tree"), a)
	head := ExtractAppliedType(tree)
	con, err := CtorOf(head)
	if err != nil {
		t.Fatalf("head of Tree a is not a constructor: %v", err)
	}
	if con.Name.String() != "Tree" {
		t.Errorf("head constructor = %s, want Tree", con.Name)
	}
}
