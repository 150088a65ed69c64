package lisp

import "fmt"

var langSpecialForms = []*langCommand{
	{"quote", 1, true, opQuote},
	{"atom", 1, false, opAtom},
	{"eq", 2, false, opEq},
	{"if", 3, true, opIf},
	{"define", 2, true, opDefine},
	{"lambda", 2, true, opLambda},
	{"print", 1, false, opPrint},
}

func opQuote(env *LEnv, args []*LVal) (*LVal, error) {
	return args[0], nil
}

func opAtom(env *LEnv, args []*LVal) (*LVal, error) {
	return Bool(args[0].IsAtom()), nil
}

func opEq(env *LEnv, args []*LVal) (*LVal, error) {
	return Bool(Equal(args[0], args[1])), nil
}

// (if test-form then-form else-form)
func opIf(env *LEnv, args []*LVal) (*LVal, error) {
	pred, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	if truthy(pred) {
		return Eval(args[1], env)
	}
	return Eval(args[2], env)
}

func opDefine(env *LEnv, args []*LVal) (*LVal, error) {
	if args[0].Type != LSymbol {
		return nil, &TypeError{Form: "define", Expect: "a symbol as first argument", Val: args[0]}
	}
	v, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	env.Put(args[0], v)
	return Nil(), nil
}

func opLambda(env *LEnv, args []*LVal) (*LVal, error) {
	formals := args[0]
	body := args[1]
	if formals.Type != LSExpr {
		return nil, &TypeError{Form: "lambda", Expect: "a parameter list as first argument", Val: formals}
	}
	for _, sym := range formals.Cells {
		if sym.Type != LSymbol {
			return nil, &TypeError{Form: "lambda", Expect: "parameter names to be symbols", Val: sym}
		}
	}
	// A lambda with no parameters acts as an eager thunk.  The body
	// evaluates here and its result is returned in place of a function.
	if len(formals.Cells) == 0 {
		return Eval(body, env)
	}
	return Lambda(env, formals, body), nil
}

func opPrint(env *LEnv, args []*LVal) (*LVal, error) {
	fmt.Fprintln(env.Output(), args[0])
	return args[0], nil
}

// truthy reports how a value reads as a conditional predicate.  false, zero,
// the empty list, and the absent value are falsey.
func truthy(v *LVal) bool {
	switch v.Type {
	case LBool:
		return v.Bool
	case LInt:
		return v.Num != 0
	case LSExpr:
		return len(v.Cells) > 0
	case LNil:
		return false
	}
	return true
}
