// Package names provides renamed identifiers and the fresh-name supply.
//
// After name resolution every identifier in the program carries a unique
// id alongside its interned text. The deriving engine draws the synthetic
// parameters and match binders it introduces from a Supply, which hands
// out names that cannot collide with anything user-written.
package names

import (
	"fmt"

	"github.com/halcyon-lang/halcyon/internal/interner"
)

// Name is a globally unique identifier: interned text plus the unique id
// assigned during renaming. Names of primitives and top-level bindings
// use UID 0; their text alone is unique.
type Name struct {
	Sym interner.Symbol
	UID int
}

func (n Name) String() string {
	if n.UID == 0 {
		return n.Sym.String()
	}
	return fmt.Sprintf("%s_%d", n.Sym.String(), n.UID)
}

// FromString returns the UID-0 name for text. Used for primitives and
// other names whose text is globally unique on its own.
func FromString(text string) Name {
	return Name{Sym: interner.Intern(text)}
}

// Supply hands out fresh names. The counter is strictly increasing and
// never recycled within a compilation unit. A Supply is owned by a single
// pass instance and is not safe for concurrent use.
type Supply struct {
	unique int
}

func NewSupply() *Supply {
	return &Supply{}
}

// Anonymous returns a fresh name with no user-visible spelling.
func (s *Supply) Anonymous() Name {
	return s.FromStr("_a")
}

// FromStr returns a fresh name spelled text.
func (s *Supply) FromStr(text string) Name {
	s.unique++
	return Name{Sym: interner.Intern(text), UID: s.unique}
}
