package lisp

import (
	"io"
	"os"
)

// LEnv is a lisp environment, a chain of scopes implementing lexical
// scoping.  Environments are shared by reference and never copied; a
// function value holds the environment that was current at its definition
// and observes later definitions made there.
type LEnv struct {
	Scope  map[string]*LVal
	Parent *LEnv

	// output is the stream written by the print form.  It is only set on a
	// root environment; child scopes reach it through the parent chain.
	output io.Writer
}

// NewEnv initializes and returns a new LEnv.  A root environment (nil
// parent) writes print output to os.Stdout unless configured otherwise.
func NewEnv(parent *LEnv, cfgs ...Config) *LEnv {
	env := &LEnv{
		Scope:  make(map[string]*LVal),
		Parent: parent,
	}
	if parent == nil {
		env.output = os.Stdout
	}
	for _, cfg := range cfgs {
		cfg(env)
	}
	return env
}

// Get takes an LSymbol k and returns the LVal it is bound to, searching the
// local scope first and then walking the parent chain.  The bound value is
// returned as-is, not copied.
func (env *LEnv) Get(k *LVal) (*LVal, error) {
	if k.Type != LSymbol {
		return nil, &TypeError{Form: "lookup", Expect: "symbol", Val: k}
	}
	for scope := env; scope != nil; scope = scope.Parent {
		if v, ok := scope.Scope[k.Sym]; ok {
			return v, nil
		}
	}
	return nil, &UnboundSymbolError{Sym: k.Sym}
}

// Put takes an LSymbol k and binds it to v in env's local scope.  Parent
// scopes are never modified.
func (env *LEnv) Put(k, v *LVal) {
	if k.Type != LSymbol {
		return
	}
	env.Scope[k.Sym] = v
}

// Extend returns a freshly allocated child of env whose local scope is
// exactly scope.  env itself is not modified.
func (env *LEnv) Extend(scope map[string]*LVal) *LEnv {
	return &LEnv{
		Scope:  scope,
		Parent: env,
	}
}

func (env *LEnv) root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// Output returns the stream that print writes to.
func (env *LEnv) Output() io.Writer {
	return env.root().output
}
