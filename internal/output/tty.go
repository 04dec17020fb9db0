package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is a terminal. Spinners and colored diffs
// are only used when it is.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
