package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cerrors "github.com/minipar-lang/minipar/compiler/errors"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream for a Minipar source file",
	Long:  "Lex a .mp source file and print one line per token, for debugging the lexer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}

		toks, errs, err := p.scan(args[0])
		if err != nil {
			return err
		}
		for _, t := range toks {
			fmt.Printf("%4d  %-10s %q\n", t.Line, t.Tag, t.Value)
		}
		if errs.HasErrors() {
			cerrors.PrintTerminal(os.Stderr, errs)
			return fmt.Errorf("%s: lexing produced errors", args[0])
		}
		return nil
	},
}
