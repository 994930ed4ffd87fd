// Package errors is the shared error taxonomy for every compiler phase:
// lexing, parsing, semantic analysis, and (wrapped) runtime failures. It
// mirrors the teacher repo's compiler/errors package — a severity-tagged,
// phase-tagged error with a terminal formatter — generalized to Minipar's
// four-phase pipeline instead of Conduit's resource compiler.
package errors

import "fmt"

// Severity classifies how serious a reported problem is.
type Severity int

const (
	Warning Severity = iota
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Phase identifies which pipeline stage raised the error.
type Phase string

const (
	PhaseLex      Phase = "lex"
	PhaseParse    Phase = "parse"
	PhaseSemantic Phase = "semantic"
	PhaseRuntime  Phase = "runtime"
)

// SourceError is a single diagnostic. Line is 0 for phases that carry no
// position (semantic and runtime errors, per spec.md §7).
type SourceError struct {
	Phase    Phase
	Message  string
	Line     int
	Severity Severity
}

func (e SourceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Phase, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Phase, e.Message)
}

func NewSyntaxError(line int, format string, args ...interface{}) SourceError {
	return SourceError{Phase: PhaseParse, Message: fmt.Sprintf(format, args...), Line: line, Severity: Error}
}

func NewSemanticError(format string, args ...interface{}) SourceError {
	return SourceError{Phase: PhaseSemantic, Message: fmt.Sprintf(format, args...), Severity: Error}
}

func NewRuntimeError(format string, args ...interface{}) SourceError {
	return SourceError{Phase: PhaseRuntime, Message: fmt.Sprintf(format, args...), Severity: Fatal}
}

// List is a collection of SourceErrors, itself satisfying error.
type List []SourceError

func (l List) Error() string {
	if len(l) == 0 {
		return "no errors"
	}
	if len(l) == 1 {
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
}

func (l List) HasErrors() bool { return len(l) > 0 }
