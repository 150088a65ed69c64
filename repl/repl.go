package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/slisp-lang/slisp/lisp"
	"github.com/slisp-lang/slisp/parser"
)

// RunRepl runs a simple repl.  Expressions are evaluated in a single
// long-lived root environment so definitions persist across lines.
func RunRepl(prompt string) {
	env := lisp.NewEnv(nil)

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) == 0 {
			continue
		}
		if !complete(line) {
			buf = line
			rl.SetPrompt(contPrompt)
			continue
		}
		vals, err := parser.Parse(line)
		if err != nil {
			errln(err)
			continue
		}
		for _, v := range vals {
			r, err := lisp.Eval(v, env)
			if err != nil {
				errln(err)
				break
			}
			fmt.Println(r)
		}
	}
	if err != io.EOF {
		errln(err)
		return
	}
	errln("done")
}

// complete reports whether line closes every list it opens.  Parentheses
// inside comments don't count.
func complete(line []byte) bool {
	depth := 0
	comment := false
	for _, c := range line {
		switch {
		case comment:
			if c == '\n' {
				comment = false
			}
		case c == ';':
			comment = true
		case c == '(':
			depth++
		case c == ')':
			depth--
		}
	}
	return depth <= 0
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
