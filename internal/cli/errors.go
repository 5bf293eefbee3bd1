package cli

import (
	"errors"
	"fmt"

	"github.com/ikovacevic/logsift/internal/output"
)

// Error codes surfaced at the CLI boundary.
const (
	codeFileNotFound = "FILE_NOT_FOUND"
	codeReadError    = "READ_ERROR"
	codeBadArgument  = "BAD_ARGUMENT"
)

// outputErrorCommon normalizes error emission across commands, respecting
// ndjson vs text formats so scripted consumers always get machine-readable
// failures.
func outputErrorCommon(globals *Globals, code, message string) error {
	if globals != nil && globals.Format == "ndjson" {
		output.NewNDJSONWriter(globals.Stdout).WriteError(code, message)
	} else if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
	}
	return errors.New(message)
}

// emitWarning respects format/quiet.
func emitWarning(globals *Globals, msg string) {
	if globals.Quiet {
		return
	}
	if globals.Format == "ndjson" {
		output.NewNDJSONWriter(globals.Stdout).WriteWarning(msg)
		return
	}
	fmt.Fprintf(globals.Stderr, "Warning: %s\n", msg)
}
