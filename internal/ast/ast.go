// Package ast defines the abstract syntax consumed and produced by the
// Halcyon front-end core: the closed expression and pattern node sets,
// typed identifiers, bindings and the module-level declarations.
//
// Nodes exclusively own their children; no subtree is aliased across two
// trees. They are constructed once (by the parser or the deriving engine)
// and read-only afterwards.
package ast

import (
	"github.com/halcyon-lang/halcyon/internal/interner"
	"github.com/halcyon-lang/halcyon/internal/names"
	"github.com/halcyon-lang/halcyon/internal/types"
)

// Id is a typed identifier occurrence: a unique name paired with its
// qualified type.
type Id struct {
	Name names.Name
	Type types.Qualified[types.Type]
}

// NewId builds a typed identifier.
func NewId(name names.Name, typ types.Type, constraints []types.Constraint) Id {
	return Id{Name: name, Type: types.Qualify(constraints, typ)}
}

func (id Id) String() string { return id.Name.String() }

// Expr is the closed interface over expression nodes.
type Expr interface {
	exprNode()
	String() string
}

// Identifier is a variable or constructor reference.
type Identifier struct {
	Id Id
}

// Apply is a function application.
type Apply struct {
	Func Expr
	Arg  Expr
}

// Literal wraps a literal value.
type Literal struct {
	Value Lit
}

// Lambda is a single-argument function abstraction.
type Lambda struct {
	Arg  Id
	Body Expr
}

// Let binds a group of local bindings in scope of Body.
type Let struct {
	Bindings []Binding
	Body     Expr
}

// Case dispatches on the scrutinee across the alternatives in order.
type Case struct {
	Expr         Expr
	Alternatives []Alternative
}

// Do is do-notation: a sequence of statements followed by a result
// expression.
type Do struct {
	Stmts  []DoStmt
	Result Expr
}

// TypeSig is a type-annotated expression.
type TypeSig struct {
	Expr Expr
	Type types.Qualified[types.Type]
}

func (*Identifier) exprNode() {}
func (*Apply) exprNode()      {}
func (*Literal) exprNode()    {}
func (*Lambda) exprNode()     {}
func (*Let) exprNode()        {}
func (*Case) exprNode()       {}
func (*Do) exprNode()         {}
func (*TypeSig) exprNode()    {}

// DoStmt is the closed interface over do-notation statements.
type DoStmt interface {
	doStmtNode()
	String() string
}

// DoLet introduces local bindings inside a do block.
type DoLet struct {
	Bindings []Binding
}

// DoBind is a monadic bind: pattern <- expression.
type DoBind struct {
	Pattern Pattern
	Expr    Expr
}

// DoExpr is an expression statement inside a do block.
type DoExpr struct {
	Expr Expr
}

func (*DoLet) doStmtNode()  {}
func (*DoBind) doStmtNode() {}
func (*DoExpr) doStmtNode() {}

// Lit is the closed interface over literal values.
type Lit interface {
	litNode()
	String() string
}

// Integral is an integer literal.
type Integral struct {
	Value int64
}

// Fractional is a floating point literal.
type Fractional struct {
	Value float64
}

// Str is a string literal.
type Str struct {
	Value interner.Symbol
}

// CharLit is a character literal.
type CharLit struct {
	Value rune
}

func (Integral) litNode()   {}
func (Fractional) litNode() {}
func (Str) litNode()        {}
func (CharLit) litNode()    {}

// Pattern is the closed interface over pattern nodes.
type Pattern interface {
	patternNode()
	String() string
}

// NumberPattern matches an integer literal.
type NumberPattern struct {
	Value int64
}

// IdentifierPattern binds the scrutinee to an identifier.
type IdentifierPattern struct {
	Id Id
}

// ConstructorPattern matches a constructor application, binding the
// argument patterns to the constructor's fields.
type ConstructorPattern struct {
	Name Id
	Args []Pattern
}

// WildcardPattern matches anything without binding.
type WildcardPattern struct{}

func (*NumberPattern) patternNode()      {}
func (*IdentifierPattern) patternNode()  {}
func (*ConstructorPattern) patternNode() {}
func (*WildcardPattern) patternNode()    {}

// Alternative is one arm of a case expression.
type Alternative struct {
	Pattern    Pattern
	Expression Expr
}

// Binding is a top-level or local function binding. The qualified type
// travels on Name. Bindings synthesized by the deriving engine are
// indistinguishable from hand-written ones to later passes.
type Binding struct {
	Name      Id
	Arguments []Pattern
	Body      Expr
}

// EncodeBindingIdentifier combines an instance name and a method name
// into one binding identifier, e.g. #Pair==. The # prefix keeps the
// combination out of the user-visible namespace, so repeated derivation
// across modules cannot collide with source bindings.
func EncodeBindingIdentifier(instanceName, bindingName interner.Symbol) interner.Symbol {
	return interner.Intern("#" + instanceName.String() + bindingName.String())
}
