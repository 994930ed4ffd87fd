package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/minipar-lang/minipar/compiler/ast"
	cerrors "github.com/minipar-lang/minipar/compiler/errors"
	"github.com/minipar-lang/minipar/compiler/lexer"
	"github.com/minipar-lang/minipar/compiler/parser"
	"github.com/minipar-lang/minipar/compiler/semantic"
	"github.com/minipar-lang/minipar/internal/config"
	"github.com/minipar-lang/minipar/internal/logging"
	"github.com/minipar-lang/minipar/compiler/token"
)

// pipeline bundles the ambient config and logger every subcommand needs,
// mirroring the teacher's pattern of loading config once per command
// invocation rather than threading flags everywhere.
type pipeline struct {
	cfg *config.Config
	log *zap.SugaredLogger
}

func newPipeline() (*pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &pipeline{cfg: cfg, log: logging.New(cfg.Log)}, nil
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// scan lexes path, surfacing LexErrors as a SourceError list so every
// subcommand reports them the same way.
func (p *pipeline) scan(path string) ([]token.Token, cerrors.List, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, nil, err
	}
	toks, lexErrs := lexer.New(src, p.log).ScanTokens()
	var errs cerrors.List
	for _, le := range lexErrs {
		errs = append(errs, cerrors.SourceError{Phase: cerrors.PhaseLex, Message: le.Message, Line: le.Line, Severity: cerrors.Error})
	}
	return toks, errs, nil
}

// parse lexes then parses path, returning the Module and any syntax errors.
func (p *pipeline) parse(path string) (*ast.Module, cerrors.List, error) {
	toks, lexErrs, err := p.scan(path)
	if err != nil {
		return nil, nil, err
	}
	if lexErrs.HasErrors() {
		return nil, lexErrs, nil
	}
	mod, parseErrs := parser.New(toks).Parse()
	return mod, parseErrs, nil
}

// analyze lexes, parses, and semantically checks path.
func (p *pipeline) analyze(path string) (*ast.Module, cerrors.List, error) {
	mod, errs, err := p.parse(path)
	if err != nil || errs.HasErrors() {
		return mod, errs, err
	}
	semErrs := semantic.New().Analyze(mod)
	return mod, semErrs, nil
}
