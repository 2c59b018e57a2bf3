package types

import (
	"strings"

	"github.com/halcyon-lang/halcyon/internal/interner"
)

// Constraint requires a typeclass instance for the listed variables,
// e.g. Eq a.
type Constraint struct {
	Class     interner.Symbol
	Variables []TVar
}

func (c Constraint) String() string {
	var b strings.Builder
	b.WriteString(c.Class.String())
	for _, v := range c.Variables {
		b.WriteByte(' ')
		b.WriteString(v.ID.String())
	}
	return b.String()
}

// Qualified pairs a value with the ordered typeclass constraints its
// free variables must satisfy, e.g. Eq a => [a].
type Qualified[T any] struct {
	Constraints []Constraint
	Value       T
}

// Qualify builds a qualified type from constraints and a type.
func Qualify(constraints []Constraint, typ Type) Qualified[Type] {
	return Qualified[Type]{Constraints: constraints, Value: typ}
}

func (q Qualified[T]) String() string {
	value := any(q.Value)
	str, ok := value.(interface{ String() string })
	if !ok {
		return ""
	}
	if len(q.Constraints) == 0 {
		return str.String()
	}
	parts := make([]string, len(q.Constraints))
	for i, c := range q.Constraints {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ") + " => " + str.String()
}
