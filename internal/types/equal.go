package types

import "github.com/halcyon-lang/halcyon/internal/interner"

// Equal compares two types up to a single consistent renaming of type
// variables: a -> b equals c -> d, but a -> b does not equal c -> c.
// Constructors must match by name and applications component-wise.
//
// The variable correspondence is tracked in one direction only, keyed on
// the right-hand variable. Two distinct right-hand variables can each be
// paired with the same left-hand variable without detection, so a few
// pairs that are not truly alpha-equivalent still compare equal.
// Downstream passes depend on the current behavior; TestEqualOneDirectional
// pins it. Tightening this to a bijective check is a behavior change.
func Equal(lhs, rhs Type) bool {
	return typeEq(make(map[interner.Symbol]interner.Symbol), lhs, rhs)
}

func typeEq(mapping map[interner.Symbol]interner.Symbol, lhs, rhs Type) bool {
	switch l := lhs.(type) {
	case TCon:
		r, ok := rhs.(TCon)
		return ok && l.Name == r.Name
	case TVar:
		r, ok := rhs.(TVar)
		if !ok {
			return false
		}
		if partner, seen := mapping[r.ID]; seen {
			return partner == l.ID
		}
		mapping[r.ID] = l.ID
		return true
	case TAp:
		r, ok := rhs.(TAp)
		if !ok {
			return false
		}
		return typeEq(mapping, l.Fn, r.Fn) && typeEq(mapping, l.Arg, r.Arg)
	}
	// TGen has no equality case: schematic variables only compare equal
	// after instantiation.
	return false
}
