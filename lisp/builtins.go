package lisp

var langArithOps = []*langCommand{
	{"+", 2, false, builtinAdd},
	{"-", 2, false, builtinSub},
	{"*", 2, false, builtinMul},
	{"/", 2, false, builtinDiv},
	{"mod", 2, false, builtinMod},
	{">", 2, false, builtinGT},
	{"<", 2, false, builtinLT},
}

var langListOps = []*langCommand{
	{"cons", 2, false, builtinCons},
	{"head", 1, false, builtinHead},
	{"tail", 1, false, builtinTail},
	{"empty", 1, false, builtinEmpty},
}

// intOperands rejects non-integer operands eagerly instead of coercing.
func intOperands(form string, args []*LVal) (x int, y int, err error) {
	for _, a := range args {
		if a.Type != LInt {
			return 0, 0, &TypeError{Form: form, Expect: "integer operands", Val: a}
		}
	}
	return args[0].Num, args[1].Num, nil
}

func builtinAdd(env *LEnv, args []*LVal) (*LVal, error) {
	x, y, err := intOperands("+", args)
	if err != nil {
		return nil, err
	}
	return Int(x + y), nil
}

func builtinSub(env *LEnv, args []*LVal) (*LVal, error) {
	x, y, err := intOperands("-", args)
	if err != nil {
		return nil, err
	}
	return Int(x - y), nil
}

func builtinMul(env *LEnv, args []*LVal) (*LVal, error) {
	x, y, err := intOperands("*", args)
	if err != nil {
		return nil, err
	}
	return Int(x * y), nil
}

// builtinDiv implements integer division truncated toward zero.
func builtinDiv(env *LEnv, args []*LVal) (*LVal, error) {
	x, y, err := intOperands("/", args)
	if err != nil {
		return nil, err
	}
	if y == 0 {
		return nil, &DivZeroError{Form: "/"}
	}
	return Int(x / y), nil
}

// builtinMod implements the remainder operation; the result takes the sign
// of the dividend.
func builtinMod(env *LEnv, args []*LVal) (*LVal, error) {
	x, y, err := intOperands("mod", args)
	if err != nil {
		return nil, err
	}
	if y == 0 {
		return nil, &DivZeroError{Form: "mod"}
	}
	return Int(x % y), nil
}

func builtinGT(env *LEnv, args []*LVal) (*LVal, error) {
	x, y, err := intOperands(">", args)
	if err != nil {
		return nil, err
	}
	return Bool(x > y), nil
}

func builtinLT(env *LEnv, args []*LVal) (*LVal, error) {
	x, y, err := intOperands("<", args)
	if err != nil {
		return nil, err
	}
	return Bool(x < y), nil
}

// builtinCons returns a new list; the tail's cells are shared, not copied.
func builtinCons(env *LEnv, args []*LVal) (*LVal, error) {
	if args[1].Type != LSExpr {
		return nil, &TypeError{Form: "cons", Expect: "a list as second argument", Val: args[1]}
	}
	cells := make([]*LVal, 0, len(args[1].Cells)+1)
	cells = append(cells, args[0])
	cells = append(cells, args[1].Cells...)
	return SExpr(cells...), nil
}

func builtinHead(env *LEnv, args []*LVal) (*LVal, error) {
	if args[0].Type != LSExpr {
		return nil, &TypeError{Form: "head", Expect: "a list", Val: args[0]}
	}
	if len(args[0].Cells) == 0 {
		return nil, &EmptyListError{Form: "head"}
	}
	return args[0].Cells[0], nil
}

func builtinTail(env *LEnv, args []*LVal) (*LVal, error) {
	if args[0].Type != LSExpr {
		return nil, &TypeError{Form: "tail", Expect: "a list", Val: args[0]}
	}
	if len(args[0].Cells) == 0 {
		return nil, &EmptyListError{Form: "tail"}
	}
	return SExpr(args[0].Cells[1:]...), nil
}

func builtinEmpty(env *LEnv, args []*LVal) (*LVal, error) {
	if args[0].Type != LSExpr {
		return nil, &TypeError{Form: "empty", Expect: "a list", Val: args[0]}
	}
	return Bool(len(args[0].Cells) == 0), nil
}
