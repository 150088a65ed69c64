package main

import "github.com/slisp-lang/slisp/cmd"

func main() {
	cmd.Execute()
}
