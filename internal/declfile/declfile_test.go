package declfile

import (
	"strings"
	"testing"

	"github.com/halcyon-lang/halcyon/internal/types"
)

const shapesDecl = `
types:
  - name: Shape
    constructors:
      - name: Circle
        fields: [Int]
      - name: Square
        fields: [Int, Int]
    deriving: [Eq, Ord]
`

func TestParseShapes(t *testing.T) {
	f, err := Parse([]byte(shapesDecl))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(f.Types) != 1 {
		t.Fatalf("got %d types, want 1", len(f.Types))
	}

	data, err := f.Types[0].DataDefinition()
	if err != nil {
		t.Fatalf("DataDefinition error: %v", err)
	}

	if data.Typ.Value.String() != "Shape" {
		t.Errorf("data type = %s, want Shape", data.Typ.Value)
	}
	if len(data.Constructors) != 2 {
		t.Fatalf("got %d constructors, want 2", len(data.Constructors))
	}

	circle := data.Constructors[0]
	square := data.Constructors[1]
	if circle.Tag != 0 || square.Tag != 1 {
		t.Errorf("tags = %d, %d, want declaration order 0, 1", circle.Tag, square.Tag)
	}
	if circle.Arity != 1 || square.Arity != 2 {
		t.Errorf("arities = %d, %d, want 1, 2", circle.Arity, square.Arity)
	}
	if got := circle.Typ.Value.String(); got != "Int -> Shape" {
		t.Errorf("Circle type = %s, want Int -> Shape", got)
	}
	if got := square.Typ.Value.String(); got != "Int -> Int -> Shape" {
		t.Errorf("Square type = %s, want Int -> Int -> Shape", got)
	}
	if len(data.Deriving) != 2 || data.Deriving[0].String() != "Eq" || data.Deriving[1].String() != "Ord" {
		t.Errorf("deriving = %v, want [Eq Ord]", data.Deriving)
	}
}

func TestParameterizedType(t *testing.T) {
	src := `
types:
  - name: Tree
    params: [a]
    constraints:
      - class: Eq
        var: a
    constructors:
      - name: Leaf
      - name: Node
        fields: [a, Tree a, Tree a]
    deriving: [Eq]
`
	f, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	data, err := f.Types[0].DataDefinition()
	if err != nil {
		t.Fatalf("DataDefinition error: %v", err)
	}

	if got := data.Typ.String(); got != "Eq a => Tree a" {
		t.Errorf("qualified data type = %q, want %q", got, "Eq a => Tree a")
	}
	leaf := data.Constructors[0]
	if leaf.Arity != 0 {
		t.Errorf("Leaf arity = %d, want 0", leaf.Arity)
	}
	node := data.Constructors[1]
	if got := node.Typ.Value.String(); got != "a -> Tree a -> Tree a -> Tree a" {
		t.Errorf("Node type = %s", got)
	}
	if len(node.Typ.Constraints) != 1 {
		t.Errorf("Node constraints = %d, want the data type's constraint copied", len(node.Typ.Constraints))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"missing type name",
			"types:\n  - constructors:\n      - name: A\n",
			"missing name",
		},
		{
			"no constructors",
			"types:\n  - name: Void\n",
			"no constructors",
		},
		{
			"duplicate constructor",
			"types:\n  - name: T\n    constructors:\n      - name: A\n      - name: A\n",
			"duplicate constructor",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil {
				t.Fatalf("Parse accepted invalid input")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestUnknownConstraintVar(t *testing.T) {
	src := `
types:
  - name: T
    constraints:
      - class: Eq
        var: b
    constructors:
      - name: A
`
	f, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, err := f.Types[0].DataDefinition(); err == nil {
		t.Fatalf("constraint on unknown parameter should fail")
	}
}

func TestParseTypeExpr(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"Int", "Int"},
		{"a", "a"},
		{"[Int]", "[Int]"},
		{"Maybe a", "Maybe a"},
		{"Maybe (Maybe a)", "Maybe (Maybe a)"},
		{"Int -> Bool", "Int -> Bool"},
		{"Int -> Bool -> Char", "Int -> Bool -> Char"},
		{"(Int -> Bool) -> Char", "(Int -> Bool) -> Char"},
		{"[a -> b]", "[a -> b]"},
		{"m a", "m a"},
		{"()", "()"},
		{"(Int)", "Int"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			typ, err := ParseTypeExpr(tt.src)
			if err != nil {
				t.Fatalf("ParseTypeExpr(%q) error: %v", tt.src, err)
			}
			if got := typ.String(); got != tt.want {
				t.Errorf("ParseTypeExpr(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseTypeExprTuple(t *testing.T) {
	typ, err := ParseTypeExpr("(Int, Bool)")
	if err != nil {
		t.Fatalf("ParseTypeExpr error: %v", err)
	}
	head := types.ExtractAppliedType(typ)
	con, err := types.CtorOf(head)
	if err != nil {
		t.Fatalf("tuple head is not a constructor: %v", err)
	}
	if con.Name.String() != "(,)" {
		t.Errorf("tuple constructor = %s, want (,)", con.Name)
	}
}

func TestParseTypeExprErrors(t *testing.T) {
	for _, src := range []string{"", "[Int", "(Int", "Int ->", "-> Int", "[Int] a"} {
		if _, err := ParseTypeExpr(src); err == nil {
			t.Errorf("ParseTypeExpr(%q) should fail", src)
		}
	}
}
