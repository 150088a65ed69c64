// Package lisptest provides a table-driven harness for testing lisp
// programs end to end, from source text through the parser and evaluator.
package lisptest

import (
	"bytes"
	"testing"

	"github.com/slisp-lang/slisp/lisp"
	"github.com/slisp-lang/slisp/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially in a shared root environment.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result, or an error message
	Output string // output written by print during evaluation
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on an isolated root
// environment.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		var output bytes.Buffer
		env := lisp.NewEnv(nil, lisp.WithOutput(&output))
		for j, expr := range test.TestSequence {
			output.Reset()
			v, err := parser.ParseOne([]byte(expr.Expr))
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			var result string
			r, err := lisp.Eval(v, env)
			if err != nil {
				result = err.Error()
			} else {
				result = r.String()
			}
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if output.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, output.String())
			}
		}
	}
}
