package config

// Built-in type constructor names.
const (
	IntTypeName      = "Int"
	CharTypeName     = "Char"
	BoolTypeName     = "Bool"
	DoubleTypeName   = "Double"
	OrderingTypeName = "Ordering"
	ListTypeName     = "[]"
	IOTypeName       = "IO"
	UnitTypeName     = "()"
	ArrowTypeName    = "->"
)

// Constructor names of the Bool and Ordering builtins.
const (
	TrueCtorName  = "True"
	FalseCtorName = "False"
	LTCtorName    = "LT"
	EQCtorName    = "EQ"
	GTCtorName    = "GT"
)

// Primitive function names referenced by generated code.
const (
	EqFuncName          = "=="
	AndFuncName         = "&&"
	CompareFuncName     = "compare"
	CompareTagsFuncName = "#compare_tags"
)

// DerivableClasses is the closed allow-list of classes the deriving
// engine can synthesize instances for. Requesting anything else is a
// fatal configuration error.
var DerivableClasses = []string{"Eq", "Ord"}

// IsTestMode indicates if the program is running in test mode.
// Trace output drops its per-run session tag in test mode so that
// captured output stays deterministic.
var IsTestMode = false
