package lisp

// TrueSymbol and FalseSymbol are the boolean literals recognized by the
// parser and produced by the printer.
const (
	TrueSymbol  = "true"
	FalseSymbol = "false"
)

// QuoteSymbol is the symbol naming the quote special form, which the parser
// also produces for the shorthand 'expr.
const QuoteSymbol = "quote"
