// Package process executes external programs and locates them on disk.
//
// It is the only place in wrench where os/exec is used to spawn tools.
package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"wrench.dev/wrench/internal/args"
	"wrench.dev/wrench/internal/environment"
	wrencherrors "wrench.dev/wrench/internal/errors"
)

// DefaultTimeout is applied when neither the settings nor the context carry a deadline
const DefaultTimeout = 5 * time.Minute

// Settings describes one process invocation
type Settings struct {
	Arguments            *args.Builder
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	Timeout              time.Duration
	// Stdout and Stderr, when set, receive output as it is produced in addition to capture
	Stdout io.Writer
	Stderr io.Writer
}

// Result holds the outcome of a finished process
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes a program synchronously
type Runner interface {
	Run(ctx context.Context, filePath string, settings Settings) (*Result, error)
}

// ExecRunner implements Runner with os/exec
type ExecRunner struct{}

// NewExecRunner creates an ExecRunner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts filePath and waits for it to exit. A spawn failure, timeout or non-zero
// exit is returned as *errors.ToolCommandError carrying the redacted command line.
func (r *ExecRunner) Run(ctx context.Context, filePath string, settings Settings) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add one
	if _, ok := ctx.Deadline(); !ok {
		timeout := settings.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	builder := settings.Arguments
	if builder == nil {
		builder = args.New()
	}

	cmd := exec.CommandContext(ctx, filePath, builder.Args()...)
	cmd.WaitDelay = time.Second
	if settings.WorkingDirectory != "" {
		cmd.Dir = settings.WorkingDirectory
	}
	if len(settings.EnvironmentVariables) > 0 {
		cmd.Env = append(os.Environ(), environment.Pairs(settings.EnvironmentVariables)...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = tee(&stdout, settings.Stdout)
	cmd.Stderr = tee(&stderr, settings.Stderr)

	err := cmd.Run()
	result := &Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
	} else {
		result.ExitCode = -1
	}
	if ctx.Err() == context.DeadlineExceeded {
		err = ctx.Err()
	}

	name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	line := filePath
	if builder.Len() > 0 {
		line += " " + builder.Redacted()
	}
	return result, wrencherrors.NewToolCommandError(name, line, result.ExitCode, result.Stdout, result.Stderr, err)
}

func tee(capture *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return capture
	}
	return io.MultiWriter(capture, w)
}
