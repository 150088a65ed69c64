package lisp

import "fmt"

// ArityError reports a form or function applied to the wrong number of
// arguments.
type ArityError struct {
	Form string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: expects %d arguments (got %d)", e.Form, e.Want, e.Got)
}

// TypeError reports an operand of the wrong shape.
type TypeError struct {
	Form   string
	Expect string
	Val    *LVal
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expects %s (got %s %v)", e.Form, e.Expect, e.Val.Type, e.Val)
}

// EmptyListError reports head or tail applied to an empty list.
type EmptyListError struct {
	Form string
}

func (e *EmptyListError) Error() string {
	return fmt.Sprintf("%s: empty list", e.Form)
}

// UnboundSymbolError reports a symbol bound nowhere in the environment
// chain.
type UnboundSymbolError struct {
	Sym string
}

func (e *UnboundSymbolError) Error() string {
	return fmt.Sprintf("unbound symbol: %s", e.Sym)
}

// NotCallableError reports an attempt to apply a value that is not a
// function.
type NotCallableError struct {
	Val *LVal
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("first element of expression is not a function: %v", e.Val)
}

// DivZeroError reports division or remainder by zero.
type DivZeroError struct {
	Form string
}

func (e *DivZeroError) Error() string {
	return fmt.Sprintf("%s: division by zero", e.Form)
}

// InvalidASTError reports a value that matches no evaluable shape.  A
// well-formed parser never produces one.
type InvalidASTError struct {
	Val *LVal
}

func (e *InvalidASTError) Error() string {
	if e.Val == nil {
		return "invalid expression: <nil>"
	}
	return fmt.Sprintf("invalid expression: %v", e.Val)
}
