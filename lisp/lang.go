package lisp

// VarArgSymbol is the symbol that indicates a variadic function argument in a
// builtin's list of formal arguments.
const VarArgSymbol = "&"

// OptArgSymbol marks the start of optional arguments in a builtin's list of
// formal arguments.
const OptArgSymbol = "&optional"

// Symbols with special meaning to the reader and evaluator.
const (
	QuoteSymbol = "quote"
	NilSymbol   = "nil"
	TrueSymbol  = "#t"
	FalseSymbol = "#f"
)
