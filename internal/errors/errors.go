// Package errors provides sentinel errors and custom error types for the wrench application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrInvalidArgument indicates that a required parameter was missing or blank
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrToolNotFound indicates that an external executable could not be located
	ErrToolNotFound = errors.New("tool not found")

	// ErrToolFailed indicates that an external tool could not be started or exited non-zero
	ErrToolFailed = errors.New("tool failed")
)

// ArgumentError represents a required parameter that was nil, empty or whitespace-only
type ArgumentError struct {
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid argument %q: %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("invalid argument %q: value is required", e.Param)
}

// Is returns true if the target error is ErrInvalidArgument
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewArgumentError creates a new ArgumentError for the named parameter
func NewArgumentError(param string) *ArgumentError {
	return &ArgumentError{Param: param}
}

// ToolNotFoundError represents an error when none of a tool's executables could be found
type ToolNotFoundError struct {
	Tool       string
	Candidates []string
}

func (e *ToolNotFoundError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("%s: could not locate executable", e.Tool)
	}
	return fmt.Sprintf("%s: could not locate executable (tried %s)", e.Tool, strings.Join(e.Candidates, ", "))
}

// Is returns true if the target error is ErrToolNotFound
func (e *ToolNotFoundError) Is(target error) bool {
	return target == ErrToolNotFound
}

// NewToolNotFoundError creates a new ToolNotFoundError
func NewToolNotFoundError(tool string, candidates []string) *ToolNotFoundError {
	return &ToolNotFoundError{Tool: tool, Candidates: candidates}
}

// ToolCommandError represents an error from an external tool execution.
// CommandLine always holds the redacted rendering of the arguments.
type ToolCommandError struct {
	Tool        string
	CommandLine string
	ExitCode    int
	Stdout      string
	Stderr      string
	Err         error
}

func (e *ToolCommandError) Error() string {
	msg := fmt.Sprintf("%s command failed", e.Tool)
	if e.CommandLine != "" {
		msg += fmt.Sprintf(": %s", e.CommandLine)
	}
	if e.ExitCode != 0 {
		msg += fmt.Sprintf(" (exit code %d)", e.ExitCode)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *ToolCommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrToolFailed
func (e *ToolCommandError) Is(target error) bool {
	return target == ErrToolFailed
}

// NewToolCommandError creates a new ToolCommandError
func NewToolCommandError(tool, commandLine string, exitCode int, stdout, stderr string, err error) *ToolCommandError {
	return &ToolCommandError{
		Tool:        tool,
		CommandLine: commandLine,
		ExitCode:    exitCode,
		Stdout:      stdout,
		Stderr:      stderr,
		Err:         err,
	}
}
