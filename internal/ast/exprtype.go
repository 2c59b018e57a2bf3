package ast

import (
	"fmt"

	"github.com/halcyon-lang/halcyon/internal/types"
)

// ExprType computes the type of an expression from the types attached to
// its identifiers. It performs no inference: it only reads annotations,
// peels function types at applications and builds arrows at lambdas.
// An expression whose type cannot be read this way indicates a defect in
// the pass that built it.
func ExprType(e Expr) (types.Type, error) {
	switch e := e.(type) {
	case *Identifier:
		return e.Id.Type.Value, nil
	case *Apply:
		fnType, err := ExprType(e.Func)
		if err != nil {
			return nil, err
		}
		_, result, ok := types.TryGetFunction(fnType)
		if !ok {
			return nil, fmt.Errorf("applied expression %s has non-function type %s", e.Func, fnType)
		}
		return result, nil
	case *Literal:
		switch e.Value.(type) {
		case Integral:
			return types.IntType(), nil
		case Fractional:
			return types.DoubleType(), nil
		case Str:
			return types.ListType(types.CharType()), nil
		case CharLit:
			return types.CharType(), nil
		}
		return nil, fmt.Errorf("unknown literal %s", e.Value)
	case *Lambda:
		bodyType, err := ExprType(e.Body)
		if err != nil {
			return nil, err
		}
		return types.FunctionType(e.Arg.Type.Value, bodyType), nil
	case *Let:
		return ExprType(e.Body)
	case *Case:
		if len(e.Alternatives) == 0 {
			return nil, fmt.Errorf("case expression %s has no alternatives", e)
		}
		return ExprType(e.Alternatives[0].Expression)
	case *Do:
		return ExprType(e.Result)
	case *TypeSig:
		return e.Type.Value, nil
	}
	return nil, fmt.Errorf("unknown expression node %s", e)
}
