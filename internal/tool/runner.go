package tool

import (
	"context"
	"fmt"
	"io"

	"wrench.dev/wrench/internal/args"
	"wrench.dev/wrench/internal/environment"
	wrencherrors "wrench.dev/wrench/internal/errors"
	"wrench.dev/wrench/internal/process"
	"wrench.dev/wrench/internal/tui"
)

// Dependencies bundles the collaborators every tool runner needs
type Dependencies struct {
	Environment *environment.Environment
	Process     process.Runner
	Locator     process.Locator
	Splog       *tui.Splog
	// Output, when set, receives the tool's stdout and stderr as they are produced
	Output io.Writer
}

// Runner executes one external tool. It is safe for concurrent use as long as
// each call supplies its own builder and settings.
type Runner struct {
	name        string
	executables []string
	deps        Dependencies
}

// NewRunner creates a Runner for the tool called name, discovered under any of executables
func NewRunner(name string, executables []string, deps Dependencies) *Runner {
	if deps.Environment == nil {
		deps.Environment = environment.NewFromOS()
	}
	if deps.Process == nil {
		deps.Process = process.NewExecRunner()
	}
	if deps.Locator == nil {
		deps.Locator = process.NewPathLocator()
	}
	if deps.Splog == nil {
		deps.Splog = tui.NewSplog()
	}
	return &Runner{name: name, executables: executables, deps: deps}
}

// Environment returns the environment paths are resolved against
func (r *Runner) Environment() *environment.Environment {
	return r.deps.Environment
}

// Run executes the tool with the arguments in builder. Errors from the process
// runner are returned unchanged; nothing is retried.
func (r *Runner) Run(ctx context.Context, settings SettingsProvider, builder *args.Builder) error {
	_, err := r.RunWithResult(ctx, settings, builder)
	return err
}

// RunWithResult is Run but also returns the captured process result
func (r *Runner) RunWithResult(ctx context.Context, settings SettingsProvider, builder *args.Builder) (*process.Result, error) {
	if err := RequireSettings("settings", settings); err != nil {
		return nil, err
	}
	s := settings.ToolSettings()
	if s == nil {
		s = &Settings{}
	}
	if builder == nil {
		builder = args.New()
	}

	toolPath, err := r.ResolveTool(s)
	if err != nil {
		return nil, err
	}

	builder, err = r.customize(s, builder)
	if err != nil {
		return nil, err
	}

	workingDir := r.deps.Environment.WorkingDirectory()
	if s.WorkingDirectory != "" {
		workingDir = r.deps.Environment.MakeAbsolute(s.WorkingDirectory)
	}

	r.deps.Splog.Debug("Executing %s: %s", r.name, tui.ColorCommand(toolPath+" "+builder.Redacted()))

	return r.deps.Process.Run(ctx, toolPath, process.Settings{
		Arguments:            builder,
		WorkingDirectory:     workingDir,
		EnvironmentVariables: s.EnvironmentVariables,
		Timeout:              s.Timeout,
		Stdout:               r.deps.Output,
		Stderr:               r.deps.Output,
	})
}

// ResolveTool returns the executable to run: the absolute ToolPath when set,
// otherwise the first candidate the locator finds
func (r *Runner) ResolveTool(s *Settings) (string, error) {
	if s != nil && s.ToolPath != "" {
		return r.deps.Environment.MakeAbsolute(s.ToolPath), nil
	}
	for _, name := range r.executables {
		if path, ok := r.deps.Locator.Resolve(name); ok {
			return path, nil
		}
	}
	return "", wrencherrors.NewToolNotFoundError(r.name, r.executables)
}

func (r *Runner) customize(s *Settings, builder *args.Builder) (*args.Builder, error) {
	if s.ExtraArguments != "" {
		extra, err := args.Parse(s.ExtraArguments)
		if err != nil {
			return nil, &wrencherrors.ArgumentError{Param: "ExtraArguments", Reason: err.Error()}
		}
		builder.AppendTokens(extra...)
	}
	if s.ArgumentCustomization != nil {
		customized := s.ArgumentCustomization(builder)
		if customized == nil {
			return nil, fmt.Errorf("%s: argument customization returned no arguments", r.name)
		}
		builder = customized
	}
	return builder, nil
}
