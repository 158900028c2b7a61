package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including timestamps and widget names.
	Verbose bool
}

// HandleError logs a QuarkError to stderr.
func (h *LogHandler) HandleError(err *QuarkError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[quark error] %s %s [%s]", err.Timestamp.Format("15:04:05.000"), err.Op, err.Kind)
		if err.Widget != "" {
			fmt.Fprintf(os.Stderr, " widget=%s", err.Widget)
		}
		fmt.Fprintf(os.Stderr, ": %v\n", err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[quark error] %s: %v\n", err.Op, err.Err)
	}
}
