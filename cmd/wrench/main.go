package main

import (
	"errors"
	"fmt"
	"os"

	"wrench.dev/wrench/internal/cli"
	wrencherrors "wrench.dev/wrench/internal/errors"
	"wrench.dev/wrench/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(fmt.Sprintf("%s (%s, %s)", version, commit, date))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.ColorRed("error: "+err.Error()))
		os.Exit(exitCode(err))
	}
}

// exitCode forwards a failing tool's exit code so wrench can sit transparently in build scripts
func exitCode(err error) int {
	var cmdErr *wrencherrors.ToolCommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}
	return 1
}
