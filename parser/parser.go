/*
Package parser provides a parser for slisp source text.

	expr    := '(' <expr>* ')' | "'" <expr> | <integer> | <boolean> | <symbol>
	integer := /[+-]?[0-9]+/
	boolean := 'true' | 'false'
	symbol  := /(?:\pL|[_+\-*\/=<>!&~%])(?:\pL|[0-9]|[_+\-*\/=<>!&~%])* /

The shorthand 'expr parses as (quote expr).  Comments run from ';' to the
end of the line.
*/
package parser

import (
	"fmt"
	"strconv"

	parsec "github.com/prataprc/goparsec"
	"github.com/slisp-lang/slisp/lisp"
)

const (
	nodeInvalid nodeType = iota
	nodeTerm
	nodeSExpr
	nodeQExpr
)

var nodeTypeStrings = []string{
	nodeInvalid: "INVALID",
	nodeTerm:    "TERM",
	nodeSExpr:   "SEXPR",
	nodeQExpr:   "QEXPR",
}

// ParseError describes malformed source text.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Msg)
}

// Parse parses every top-level expression in text and returns them in
// order.  Comments and whitespace between expressions are discarded.  A
// *ParseError is returned when text contains input that is not part of any
// expression.
func Parse(text []byte) ([]*lisp.LVal, error) {
	var vals []*lisp.LVal
	s := parsec.NewScanner(text)
	parser := newParsecParser()
	root, s := parser(s)
	for root != nil {
		if v := getLVal(root); v != nil {
			vals = append(vals, v)
		}
		root, s = parser(s)
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		return vals, &ParseError{Pos: s.GetCursor(), Msg: "unexpected input"}
	}
	return vals, nil
}

// ParseOne parses text containing exactly one expression.
func ParseOne(text []byte) (*lisp.LVal, error) {
	vals, err := Parse(text)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, &ParseError{Msg: fmt.Sprintf("expected one expression (got %d)", len(vals))}
	}
	return vals[0], nil
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	q := parsec.Atom("'", "QUOTE")
	comment := parsec.Token(`;([^\n]*[^\s])?`, "COMMENT")
	integer := parsec.Token(`[+-]?[0-9]+`, "INT")
	symbol := parsec.Token(`(?:\pL|[_+\-*/=<>!&~%])(?:\pL|[0-9]|[_+\-*/=<>!&~%])*`, "SYMBOL")
	term := parsec.OrdChoice(astNode(nodeTerm), // terminal token
		integer,
		symbol, // symbol comes last because it swallows anything
	)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	sexpr := parsec.And(astNode(nodeSExpr), openP, exprList, closeP)
	qexpr := parsec.And(astNode(nodeQExpr), q, &expr)
	expr = parsec.OrdChoice(nil, comment, term, sexpr, qexpr)
	return expr
}

type nodeType uint

func (t nodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return "INVALID"
	}
	return nodeTypeStrings[t]
}

func newAST(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	switch typ {
	case nodeTerm:
		term, ok := nodes[0].(*parsec.Terminal)
		if !ok {
			return nil
		}
		switch term.Name {
		case "INT":
			x, err := strconv.Atoi(term.Value)
			if err != nil {
				return nil
			}
			return lisp.Int(x)
		case "SYMBOL":
			switch term.Value {
			case lisp.TrueSymbol:
				return lisp.Bool(true)
			case lisp.FalseSymbol:
				return lisp.Bool(false)
			}
			return lisp.Symbol(term.Value)
		}
		return nil
	case nodeSExpr:
		// We don't want terminal parsec nodes '(' and ')'
		var cells []*lisp.LVal
		for _, c := range nodes {
			if v, ok := c.(*lisp.LVal); ok {
				cells = append(cells, v)
			}
		}
		return lisp.SExpr(cells...)
	case nodeQExpr:
		// We don't want the terminal parsec node "'"
		v, ok := nodes[1].(*lisp.LVal)
		if !ok {
			return nil
		}
		return lisp.SExpr(lisp.Symbol(lisp.QuoteSymbol), v)
	default:
		panic(fmt.Sprintf("unknown nodeType: %s (%d)", typ, typ))
	}
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return newAST(t, nodes)
	}
}

func getLVal(root parsec.ParsecNode) *lisp.LVal {
	nodes := cleanParsecNodeList([]parsec.ParsecNode{root})
	if len(nodes) == 0 {
		// we can be here if there is only whitespace on a line
		return nil
	}
	lval, ok := nodes[0].(*lisp.LVal)
	if !ok {
		// we can be here if there is only a comment on a line
		return nil
	}
	return lval
}
