package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cerrors "github.com/minipar-lang/minipar/compiler/errors"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print the parsed AST as JSON",
	Long:  "Lex and parse a .mp source file, printing the resulting AST as indented JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}

		mod, errs, err := p.parse(args[0])
		if err != nil {
			return err
		}
		if errs.HasErrors() {
			cerrors.PrintTerminal(os.Stderr, errs)
			return fmt.Errorf("%s: failed to parse", args[0])
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(mod)
	},
}
