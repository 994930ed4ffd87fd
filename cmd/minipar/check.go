package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cerrors "github.com/minipar-lang/minipar/compiler/errors"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Lex, parse, and semantically check a Minipar source file",
	Long:  "Run the full front end (lexer, parser, semantic analyzer) without evaluating, exiting non-zero on the first error",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}

		_, errs, err := p.analyze(args[0])
		if err != nil {
			return err
		}
		if errs.HasErrors() {
			cerrors.PrintTerminal(os.Stderr, errs)
			return fmt.Errorf("%s: check failed", args[0])
		}

		fmt.Printf("%s: ok\n", args[0])
		return nil
	},
}
