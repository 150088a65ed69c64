package lisp

// commandFn evaluates a recognized command.  Handlers for special forms
// receive their arguments unevaluated; all other handlers receive values.
type commandFn func(env *LEnv, args []*LVal) (*LVal, error)

type langCommand struct {
	name    string
	arity   int
	special bool
	fun     commandFn
}

// langCommands is the closed set of recognized leading symbols.  A symbol
// outside the set is an ordinary name and resolves through the environment.
var langCommands = map[string]*langCommand{}

func init() {
	for _, family := range [][]*langCommand{langSpecialForms, langArithOps, langListOps} {
		for _, cmd := range family {
			langCommands[cmd.name] = cmd
		}
	}
}

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Evaluation either returns a value or fails with the first error
// encountered; there is no recovery and no partial result.
func Eval(v *LVal, env *LEnv) (*LVal, error) {
	if v == nil {
		return nil, &InvalidASTError{}
	}
	switch v.Type {
	case LInt, LBool:
		return v, nil
	case LSymbol:
		return env.Get(v)
	case LFun:
		return applyClosure(v, nil, env)
	case LSExpr:
		if len(v.Cells) > 0 {
			return evalSExpr(v, env)
		}
	}
	return nil, &InvalidASTError{Val: v}
}

func evalSExpr(v *LVal, env *LEnv) (*LVal, error) {
	first := v.Cells[0]
	rest := v.Cells[1:]
	switch first.Type {
	case LSymbol:
		if cmd, ok := langCommands[first.Sym]; ok {
			return evalCommand(cmd, rest, env)
		}
		// A non-command head symbol must name a function.  The application
		// is evaluated in its reduced form; the list itself is not
		// rewritten.
		fun, err := env.Get(first)
		if err != nil {
			return nil, err
		}
		if fun.Type != LFun {
			return nil, &NotCallableError{Val: fun}
		}
		return applyClosure(fun, rest, env)
	case LFun:
		return applyClosure(first, rest, env)
	default:
		head, err := Eval(first, env)
		if err != nil {
			return nil, err
		}
		if head.Type == LFun {
			return applyClosure(head, rest, env)
		}
		// The head is not callable.  Its value is discarded and the rest of
		// the list evaluates in its place, except that an empty rest leaves
		// the head's value as the result.
		if len(rest) == 0 {
			return head, nil
		}
		return Eval(SExpr(rest...), env)
	}
}

func evalCommand(cmd *langCommand, args []*LVal, env *LEnv) (*LVal, error) {
	if len(args) != cmd.arity {
		return nil, &ArityError{Form: cmd.name, Want: cmd.arity, Got: len(args)}
	}
	if cmd.special {
		return cmd.fun(env, args)
	}
	vals := make([]*LVal, len(args))
	for i, arg := range args {
		v, err := Eval(arg, env)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return cmd.fun(env, vals)
}

// applyClosure evaluates args left to right in the caller's environment and
// evaluates fun's body in an extension of fun's defining environment binding
// the formals to the argument values.
func applyClosure(fun *LVal, args []*LVal, env *LEnv) (*LVal, error) {
	if len(fun.Formals.Cells) != len(args) {
		return nil, &ArityError{
			Form: "function",
			Want: len(fun.Formals.Cells),
			Got:  len(args),
		}
	}
	scope := make(map[string]*LVal, len(args))
	for i, arg := range args {
		v, err := Eval(arg, env)
		if err != nil {
			return nil, err
		}
		scope[fun.Formals.Cells[i].Sym] = v
	}
	return Eval(fun.Body, fun.Env.Extend(scope))
}
