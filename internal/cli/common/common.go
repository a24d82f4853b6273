// Package common provides shared helper functions for CLI commands.
package common

import (
	"github.com/spf13/cobra"

	"wrench.dev/wrench/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function.
// The log file is closed when fn returns, whether or not it failed.
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) (err error) {
	ctx, err := runtime.GetContext(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := ctx.Splog.Close(); err == nil {
			err = closeErr
		}
	}()
	return fn(ctx)
}

// FirstNonEmpty returns the first value that is not the empty string
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
