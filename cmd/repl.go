package cmd

import (
	"github.com/slisp-lang/slisp/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl(replPrompt)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
