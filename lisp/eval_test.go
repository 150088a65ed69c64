package lisp

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalSelfEvaluating(t *testing.T) {
	env := NewEnv(nil)
	for _, v := range []*LVal{Int(0), Int(42), Int(-7), Bool(true), Bool(false)} {
		r, err := Eval(v, env)
		require.NoError(t, err)
		assert.Same(t, v, r)
	}
}

func TestEvalSymbol(t *testing.T) {
	env := NewEnv(nil)
	env.Put(Symbol("x"), Int(1))

	r, err := Eval(Symbol("x"), env)
	require.NoError(t, err)
	assert.True(t, Equal(Int(1), r))

	_, err = Eval(Symbol("zap"), env)
	var unbound *UnboundSymbolError
	require.True(t, errors.As(err, &unbound))
	assert.Equal(t, "zap", unbound.Sym)
}

func TestEvalQuote(t *testing.T) {
	env := NewEnv(nil)
	// the argument comes back unevaluated, not a copy
	arg := SExpr(Symbol("undefined"), Int(1))
	r, err := Eval(SExpr(Symbol("quote"), arg), env)
	require.NoError(t, err)
	assert.Same(t, arg, r)
}

func TestEvalIf(t *testing.T) {
	env := NewEnv(nil)
	r, err := Eval(SExpr(Symbol("if"), Bool(true), Int(1), Int(2)), env)
	require.NoError(t, err)
	assert.True(t, Equal(Int(1), r))

	r, err = Eval(SExpr(Symbol("if"), Bool(false), Int(1), Int(2)), env)
	require.NoError(t, err)
	assert.True(t, Equal(Int(2), r))

	_, err = Eval(SExpr(Symbol("if"), Bool(true), Int(1)), env)
	var arity *ArityError
	require.True(t, errors.As(err, &arity))
	assert.Equal(t, "if", arity.Form)
	assert.Equal(t, 3, arity.Want)
	assert.Equal(t, 2, arity.Got)
}

func TestArityCheckedBeforeEvaluation(t *testing.T) {
	env := NewEnv(nil)
	_, err := Eval(SExpr(Symbol("head"), SExpr(), SExpr()), env)
	var arity *ArityError
	require.True(t, errors.As(err, &arity))
	assert.Equal(t, "head", arity.Form)
	assert.Equal(t, 1, arity.Want)
	assert.Equal(t, 2, arity.Got)
}

func TestEvalDefine(t *testing.T) {
	env := NewEnv(nil)
	r, err := Eval(SExpr(Symbol("define"), Symbol("x"), SExpr(Symbol("+"), Int(1), Int(2))), env)
	require.NoError(t, err)
	assert.True(t, r.IsNil())

	v, err := env.Get(Symbol("x"))
	require.NoError(t, err)
	assert.True(t, Equal(Int(3), v))

	_, err = Eval(SExpr(Symbol("define"), Int(1), Int(2)), env)
	var typeErr *TypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "define", typeErr.Form)
}

func TestEvalLambda(t *testing.T) {
	env := NewEnv(nil)
	fun, err := Eval(SExpr(Symbol("lambda"), SExpr(Symbol("x")), Symbol("x")), env)
	require.NoError(t, err)
	require.True(t, fun.IsClosure())
	// the defining environment is shared, not copied
	assert.Same(t, env, fun.Env)

	_, err = Eval(SExpr(Symbol("lambda"), Int(1), Symbol("x")), env)
	var typeErr *TypeError
	require.True(t, errors.As(err, &typeErr))

	_, err = Eval(SExpr(Symbol("lambda"), SExpr(Int(1)), Symbol("x")), env)
	require.True(t, errors.As(err, &typeErr))
}

func TestEvalLambdaZeroParamsIsEager(t *testing.T) {
	env := NewEnv(nil)
	r, err := Eval(SExpr(Symbol("lambda"), SExpr(), SExpr(Symbol("+"), Int(1), Int(2))), env)
	require.NoError(t, err)
	assert.True(t, Equal(Int(3), r))
}

func TestApplyClosure(t *testing.T) {
	env := NewEnv(nil)
	lambda := SExpr(Symbol("lambda"), SExpr(Symbol("x")), SExpr(Symbol("+"), Symbol("x"), Int(1)))

	r, err := Eval(SExpr(lambda, Int(41)), env)
	require.NoError(t, err)
	assert.True(t, Equal(Int(42), r))

	_, err = Eval(SExpr(lambda, Int(1), Int(2)), env)
	var arity *ArityError
	require.True(t, errors.As(err, &arity))
	assert.Equal(t, 1, arity.Want)
	assert.Equal(t, 2, arity.Got)
}

func TestApplyResolvedSymbol(t *testing.T) {
	env := NewEnv(nil)
	fun, err := Eval(SExpr(Symbol("lambda"), SExpr(Symbol("x")), Symbol("x")), env)
	require.NoError(t, err)
	env.Put(Symbol("id"), fun)

	// the application list must not be rewritten in place
	call := SExpr(Symbol("id"), Int(4))
	r, err := Eval(call, env)
	require.NoError(t, err)
	assert.True(t, Equal(Int(4), r))
	assert.Equal(t, LSymbol, call.Cells[0].Type)

	env.Put(Symbol("notfun"), Int(1))
	_, err = Eval(SExpr(Symbol("notfun"), Int(4)), env)
	var notCallable *NotCallableError
	require.True(t, errors.As(err, &notCallable))
}

func TestNonCallableHeadFallsThrough(t *testing.T) {
	env := NewEnv(nil)
	// a lone non-callable head evaluates to itself
	r, err := Eval(SExpr(Int(1)), env)
	require.NoError(t, err)
	assert.True(t, Equal(Int(1), r))

	// otherwise the head's value is discarded and the tail evaluates as a
	// list, returning the last expression
	r, err = Eval(SExpr(Int(1), Int(2), Int(3)), env)
	require.NoError(t, err)
	assert.True(t, Equal(Int(3), r))
}

func TestRecursiveDefinition(t *testing.T) {
	var output bytes.Buffer
	env := NewEnv(nil, WithOutput(&output))

	// (define fact (lambda (n) (if (eq n 0) 1 (* n (fact (- n 1))))))
	fact := SExpr(Symbol("define"), Symbol("fact"),
		SExpr(Symbol("lambda"), SExpr(Symbol("n")),
			SExpr(Symbol("if"), SExpr(Symbol("eq"), Symbol("n"), Int(0)),
				Int(1),
				SExpr(Symbol("*"), Symbol("n"),
					SExpr(Symbol("fact"), SExpr(Symbol("-"), Symbol("n"), Int(1)))))))
	_, err := Eval(fact, env)
	require.NoError(t, err)

	r, err := Eval(SExpr(Symbol("print"), SExpr(Symbol("fact"), Int(3))), env)
	require.NoError(t, err)
	assert.True(t, Equal(Int(6), r))

	r, err = Eval(SExpr(Symbol("print"), SExpr(Symbol("fact"), Int(6))), env)
	require.NoError(t, err)
	assert.True(t, Equal(Int(720), r))

	assert.Equal(t, "6\n720\n", output.String())
}

func TestEvalInvalid(t *testing.T) {
	env := NewEnv(nil)
	var invalid *InvalidASTError

	_, err := Eval(nil, env)
	require.True(t, errors.As(err, &invalid))

	_, err = Eval(SExpr(), env)
	require.True(t, errors.As(err, &invalid))

	_, err = Eval(Nil(), env)
	require.True(t, errors.As(err, &invalid))
}

func TestPrintWritesOutput(t *testing.T) {
	var output bytes.Buffer
	env := NewEnv(nil, WithOutput(&output))

	r, err := Eval(SExpr(Symbol("print"), SExpr(Symbol("quote"), SExpr(Int(1), Int(2)))), env)
	require.NoError(t, err)
	assert.True(t, Equal(SExpr(Int(1), Int(2)), r))
	assert.Equal(t, "(1 2)\n", output.String())
}
