package utils

import (
	"os"

	"github.com/mattn/go-isatty"
)

// NonInteractiveEnv disables every prompt when set to any non-empty value
const NonInteractiveEnv = "WRENCH_NON_INTERACTIVE"

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsInteractive reports whether prompting is allowed: stdin and stdout are
// terminals and WRENCH_NON_INTERACTIVE is unset
func IsInteractive() bool {
	if os.Getenv(NonInteractiveEnv) != "" {
		return false
	}
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}
