package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cerrors "github.com/minipar-lang/minipar/compiler/errors"
	"github.com/minipar-lang/minipar/internal/diagnostics"
	"github.com/minipar-lang/minipar/runtime/evaluator"
)

var diagnosticsAddr string

func init() {
	runCmd.Flags().StringVar(&diagnosticsAddr, "diagnostics-addr", "", "Address to serve the diagnostics HTTP server on (empty disables it)")
}

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Minipar source file",
	Long:  "Lex, parse, semantically analyze, and evaluate a .mp source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}

		mod, errs, err := p.analyze(args[0])
		if err != nil {
			return err
		}
		if errs.HasErrors() {
			cerrors.PrintTerminal(os.Stderr, errs)
			return fmt.Errorf("%s: failed to run", args[0])
		}

		eval := evaluator.New(p.log, p.cfg.ChannelTimeout)

		addr := diagnosticsAddr
		if addr == "" && p.cfg.Diagnostics.Enabled {
			addr = p.cfg.Diagnostics.Addr
		}
		if addr != "" {
			go func() {
				if err := diagnostics.Serve(addr, eval, p.log); err != nil {
					p.log.Warnw("diagnostics server stopped", "error", err)
				}
			}()
			p.log.Infow("diagnostics server listening", "addr", addr)
		}

		if err := eval.Run(mod); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		return nil
	},
}
