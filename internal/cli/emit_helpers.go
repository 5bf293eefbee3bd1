package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ikovacevic/logsift/internal/output"
)

// emitStatus writes a one-line colored verdict to stderr after a text-format
// run. Skipped for ndjson, under --quiet, and when stderr is not a terminal,
// so piped output never picks up escape sequences.
func emitStatus(globals *Globals, hasErrors, hasWarnings bool) {
	if globals.Quiet || globals.Format != "text" {
		return
	}
	f, ok := globals.Stderr.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return
	}
	fmt.Fprintln(globals.Stderr, output.StatusText(hasErrors, hasWarnings))
}
