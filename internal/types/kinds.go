package types

import "fmt"

// Kind represents the "type of a type".
// * (Star) is the kind of proper types (Int, Bool, [Int]).
// * -> * is the kind of type constructors awaiting one more argument.
type Kind interface {
	String() string
	Equal(Kind) bool
}

// KStar is the kind of a value type (*).
type KStar struct{}

func (k KStar) String() string { return "*" }
func (k KStar) Equal(other Kind) bool {
	_, ok := other.(KStar)
	return ok
}

// KArrow is the kind of a type constructor (k1 -> k2).
type KArrow struct {
	Left  Kind
	Right Kind
}

func (k KArrow) String() string {
	return fmt.Sprintf("(%s -> %s)", k.Left.String(), k.Right.String())
}

func (k KArrow) Equal(other Kind) bool {
	o, ok := other.(KArrow)
	if !ok {
		return false
	}
	return k.Left.Equal(o.Left) && k.Right.Equal(o.Right)
}

var Star Kind = KStar{}

// KindFromArity builds the kind of a constructor that is applied to
// arity-1 type arguments: arity 1 gives *, arity n gives n-1 nested
// arrows ending in *.
func KindFromArity(arity int) Kind {
	kind := Star
	for i := 1; i < arity; i++ {
		kind = KArrow{Left: Star, Right: kind}
	}
	return kind
}

// MakeArrow builds an n-ary arrow kind, e.g. MakeArrow(Star, Star, Star)
// is * -> * -> *.
func MakeArrow(args ...Kind) Kind {
	if len(args) == 0 {
		return Star
	}
	if len(args) == 1 {
		return args[0]
	}
	return KArrow{Left: args[0], Right: MakeArrow(args[1:]...)}
}
