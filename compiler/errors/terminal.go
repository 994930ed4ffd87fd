package errors

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintTerminal writes a human-readable, colorized rendering of errs to w,
// in the teacher's compiler/errors/terminal.go style: red for fatal/error,
// yellow for warnings.
func PrintTerminal(w io.Writer, errs List) {
	errColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow, color.Bold)

	for _, e := range errs {
		switch e.Severity {
		case Warning:
			warnColor.Fprintf(w, "warning: ")
		default:
			errColor.Fprintf(w, "%s: ", e.Severity)
		}
		fmt.Fprintln(w, e.Error())
	}
}
