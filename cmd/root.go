package cmd

import (
	"fmt"
	"os"

	"github.com/slisp-lang/slisp/repl"
	"github.com/spf13/cobra"
)

const replPrompt = "slisp> "

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slisp",
	Short: "A small lisp interpreter",
	Long: `slisp is a small lisp interpreter supporting integers, booleans,
symbols, lists, quoting, conditionals, definitions, and lambda closures.

Without arguments slisp starts an interactive session.`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl(replPrompt)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
