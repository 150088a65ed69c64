package lisp

import "io"

// Config is a function that configures a root environment.
type Config func(env *LEnv)

// WithOutput returns a Config that makes the print form write to w instead
// of the default, os.Stdout.
func WithOutput(w io.Writer) Config {
	return func(env *LEnv) {
		env.root().output = w
	}
}
