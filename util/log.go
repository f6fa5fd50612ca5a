package util

import (
	"fmt"
	"io"

	"github.com/juancwu/quiz-cli/text"
)

// LogApiResponseErrs ensures a standard way to print errors from api responses.
func LogApiResponseErrs(w io.Writer, errs ...string) {
	for _, e := range errs {
		fmt.Fprintf(w, "%s %s\n", text.Foreground(text.RED, "Error:"), e)
	}
}

// LogWarn prints a warning line.
func LogWarn(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", text.Foreground(text.YELLOW, "WARN:"), msg)
}

// LogSuccess prints a success line.
func LogSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, text.Foreground(text.GREEN, msg))
}
