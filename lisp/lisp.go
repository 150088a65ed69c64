package lisp

import (
	"bytes"
	"fmt"
	"strconv"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LInt
	LBool
	LSymbol
	LSExpr
	LFun
	LNil
)

var ltypeStrings = []string{
	LInvalid: "INVALID",
	LInt:     "int",
	LBool:    "bool",
	LSymbol:  "symbol",
	LSExpr:   "list",
	LFun:     "function",
	LNil:     "nil",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LVal is a lisp value
type LVal struct {
	Type  LType
	Num   int
	Bool  bool
	Sym   string
	Cells []*LVal

	// Fields needed for function values
	Env     *LEnv
	Formals *LVal
	Body    *LVal
}

// Int returns an LVal representing the integer x.
func Int(x int) *LVal {
	return &LVal{
		Type: LInt,
		Num:  x,
	}
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	return &LVal{
		Type: LBool,
		Bool: b,
	}
}

// Symbol returns an LVal representing the symbol s
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Sym:  s,
	}
}

// SExpr returns an LVal representing a list with the given cells.
func SExpr(cells ...*LVal) *LVal {
	return &LVal{
		Type:  LSExpr,
		Cells: cells,
	}
}

// Nil returns an LVal representing an absent value, the result of a
// definition.  The absent value is not a list.
func Nil() *LVal {
	return &LVal{
		Type: LNil,
	}
}

// Lambda returns a function value that binds formals when applied and
// evaluates body in an extension of env.  The environment is shared, not
// copied, so definitions made in env (or its ancestors) after the lambda is
// constructed are visible to the body.  Recursive functions rely on this.
func Lambda(env *LEnv, formals *LVal, body *LVal) *LVal {
	return &LVal{
		Type:    LFun,
		Env:     env,
		Formals: formals,
		Body:    body,
	}
}

// IsAtom returns true if v is an atom, that is an integer, a boolean, or a
// symbol.  Lists and functions are not atoms.
func (v *LVal) IsAtom() bool {
	switch v.Type {
	case LInt, LBool, LSymbol:
		return true
	}
	return false
}

// IsList returns true if v is a list (possibly empty).
func (v *LVal) IsList() bool {
	return v.Type == LSExpr
}

// IsClosure returns true if v is a function value.
func (v *LVal) IsClosure() bool {
	return v.Type == LFun
}

// IsNil returns true if v is the absent value.
func (v *LVal) IsNil() bool {
	return v.Type == LNil
}

// Equal returns true if a and b are structurally equal.  Values of differing
// types are never equal.  Lists are compared elementwise and functions are
// compared by identity.
func Equal(a, b *LVal) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case LInt:
		return a.Num == b.Num
	case LBool:
		return a.Bool == b.Bool
	case LSymbol:
		return a.Sym == b.Sym
	case LSExpr:
		if len(a.Cells) != len(b.Cells) {
			return false
		}
		for i := range a.Cells {
			if !Equal(a.Cells[i], b.Cells[i]) {
				return false
			}
		}
		return true
	case LFun:
		return a == b
	case LNil:
		return true
	}
	return false
}

func (v *LVal) String() string {
	switch v.Type {
	case LInt:
		return strconv.Itoa(v.Num)
	case LBool:
		if v.Bool {
			return TrueSymbol
		}
		return FalseSymbol
	case LSymbol:
		return v.Sym
	case LSExpr:
		if q, ok := v.quotedForm(); ok {
			return "'" + q.String()
		}
		return exprString(v, "(", ")")
	case LFun:
		return fmt.Sprintf("(lambda %v %v)", v.Formals, v.Body)
	case LNil:
		return "()"
	default:
		return fmt.Sprintf("%#v", v)
	}
}

// quotedForm reports whether v is a (quote x) form and returns x when it is.
func (v *LVal) quotedForm() (*LVal, bool) {
	if len(v.Cells) != 2 {
		return nil, false
	}
	if v.Cells[0].Type != LSymbol || v.Cells[0].Sym != QuoteSymbol {
		return nil, false
	}
	return v.Cells[1], true
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
