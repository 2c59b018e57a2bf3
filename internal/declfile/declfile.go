// Package declfile loads YAML data-type declaration files and builds the
// corresponding AST data definitions. It stands in for the parser and
// resolver when exercising the deriving engine directly, e.g. from the
// halcyon-derive tool:
//
//	types:
//	  - name: Shape
//	    constructors:
//	      - name: Circle
//	        fields: [Int]
//	      - name: Square
//	        fields: [Int, Int]
//	    deriving: [Eq, Ord]
package declfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/halcyon-lang/halcyon/internal/ast"
	"github.com/halcyon-lang/halcyon/internal/interner"
	"github.com/halcyon-lang/halcyon/internal/names"
	"github.com/halcyon-lang/halcyon/internal/types"
)

// File is the top-level declaration file.
type File struct {
	Types []DataDecl `yaml:"types"`
}

// DataDecl declares one algebraic data type.
type DataDecl struct {
	// Name is the data type's constructor name, e.g. "Shape".
	Name string `yaml:"name"`

	// Params lists the type parameters in order, e.g. ["a"].
	Params []string `yaml:"params,omitempty"`

	// Constraints qualify the data type, e.g. Eq a.
	Constraints []ConstraintDecl `yaml:"constraints,omitempty"`

	// Constructors in declaration order; the order assigns the tags.
	Constructors []CtorDecl `yaml:"constructors"`

	// Deriving lists the classes to derive instances for.
	Deriving []string `yaml:"deriving,omitempty"`
}

// ConstraintDecl is one typeclass constraint on a type parameter.
type ConstraintDecl struct {
	Class string `yaml:"class"`
	Var   string `yaml:"var"`
}

// CtorDecl declares one constructor with its field type expressions.
type CtorDecl struct {
	Name   string   `yaml:"name"`
	Fields []string `yaml:"fields,omitempty"`
}

// Load reads and parses a declaration file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read declaration file: %w", err)
	}
	return Parse(data)
}

// Parse parses declaration file contents.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse declaration file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	for i := range f.Types {
		d := &f.Types[i]
		if d.Name == "" {
			return fmt.Errorf("type %d: missing name", i)
		}
		if len(d.Constructors) == 0 {
			return fmt.Errorf("type %s: no constructors", d.Name)
		}
		seen := make(map[string]bool)
		for _, c := range d.Constructors {
			if c.Name == "" {
				return fmt.Errorf("type %s: constructor without a name", d.Name)
			}
			if seen[c.Name] {
				return fmt.Errorf("type %s: duplicate constructor %s", d.Name, c.Name)
			}
			seen[c.Name] = true
		}
	}
	return nil
}

// DataDefinition builds the AST data definition for the declaration,
// with tags assigned in declaration order and constructor types curried
// from the field types to the data type.
func (d *DataDecl) DataDefinition() (*ast.DataDefinition, error) {
	params := make(map[interner.Symbol]int, len(d.Params))
	vars := make([]types.Type, len(d.Params))
	varNames := make(map[string]bool, len(d.Params))
	for i, p := range d.Params {
		sym := interner.Intern(p)
		params[sym] = i
		vars[i] = types.NewVar(sym)
		varNames[p] = true
	}

	constraints := make([]types.Constraint, 0, len(d.Constraints))
	for _, c := range d.Constraints {
		if !varNames[c.Var] {
			return nil, fmt.Errorf("type %s: constraint %s %s names an unknown parameter", d.Name, c.Class, c.Var)
		}
		constraints = append(constraints, types.Constraint{
			Class:     interner.Intern(c.Class),
			Variables: []types.TVar{{ID: interner.Intern(c.Var), Kind: types.Star}},
		})
	}

	dataType := types.NewOp(interner.Intern(d.Name), vars...)

	ctors := make([]ast.Constructor, len(d.Constructors))
	for tag, c := range d.Constructors {
		ctorType := dataType
		for i := len(c.Fields) - 1; i >= 0; i-- {
			field, err := ParseTypeExpr(c.Fields[i])
			if err != nil {
				return nil, fmt.Errorf("type %s, constructor %s: %w", d.Name, c.Name, err)
			}
			ctorType = types.FunctionType(field, ctorType)
		}
		ctors[tag] = ast.Constructor{
			Name:  names.FromString(c.Name),
			Typ:   types.Qualify(constraints, ctorType),
			Tag:   tag,
			Arity: len(c.Fields),
		}
	}

	deriving := make([]interner.Symbol, len(d.Deriving))
	for i, class := range d.Deriving {
		deriving[i] = interner.Intern(class)
	}

	return &ast.DataDefinition{
		Constructors: ctors,
		Typ:          types.Qualify(constraints, dataType),
		Parameters:   params,
		Deriving:     deriving,
	}, nil
}
