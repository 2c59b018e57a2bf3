package ast

import (
	"github.com/halcyon-lang/halcyon/internal/interner"
	"github.com/halcyon-lang/halcyon/internal/names"
	"github.com/halcyon-lang/halcyon/internal/types"
)

// Module is one compilation unit after parsing and renaming.
type Module struct {
	Name             interner.Symbol
	Imports          []Import
	Bindings         []Binding
	TypeDeclarations []TypeDeclaration
	Classes          []Class
	Instances        []Instance
	DataDefinitions  []DataDefinition
}

// Import names a module dependency.
type Import struct {
	Module interner.Symbol
}

// Class is a typeclass declaration: a class name, the class variable and
// the method signatures.
type Class struct {
	Name         interner.Symbol
	Variable     types.TVar
	Declarations []TypeDeclaration
}

// Instance is a typeclass instance: its method bindings, the instance
// constraints, the instance head type and the class it implements.
type Instance struct {
	Bindings    []Binding
	Constraints []types.Constraint
	Typ         types.Type
	ClassName   interner.Symbol
}

// TypeDeclaration is a standalone type signature, name :: type.
type TypeDeclaration struct {
	Name interner.Symbol
	Typ  types.Qualified[types.Type]
}

// Constructor describes one constructor of a data definition. Typ is the
// curried function type from the fields to the data type; Tag is the
// zero-based declaration-order discriminant; Arity the field count.
type Constructor struct {
	Name  names.Name
	Typ   types.Qualified[types.Type]
	Tag   int
	Arity int
}

// DataDefinition is an algebraic data type: its constructors in
// declaration order (tags contiguous from zero — declaration order is
// the semantic basis for derived comparison), the qualified type of the
// data type itself, the position of each type parameter, and the list of
// classes to derive.
type DataDefinition struct {
	Constructors []Constructor
	Typ          types.Qualified[types.Type]
	Parameters   map[interner.Symbol]int
	Deriving     []interner.Symbol
}

// BindingGroups splits bindings into runs of adjacent bindings sharing
// one name, e.g. the clauses of
//
//	not True = False
//	not False = True
//	undefined = ...
//
// group into [[not, not], [undefined]].
func BindingGroups(bindings []Binding) [][]Binding {
	var groups [][]Binding
	for len(bindings) > 0 {
		end := len(bindings)
		for i, b := range bindings {
			if b.Name.Name != bindings[0].Name.Name {
				end = i
				break
			}
		}
		groups = append(groups, bindings[:end])
		bindings = bindings[end:]
	}
	return groups
}
