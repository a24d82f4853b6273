// Package dotnet holds the settings and argument prefix shared by every dotnet CLI command.
package dotnet

import (
	"context"

	"wrench.dev/wrench/internal/args"
	"wrench.dev/wrench/internal/tool"
)

// ToolName is the display name used in logs and errors
const ToolName = ".NET CLI"

// Executables lists the names the dotnet CLI is installed under, in lookup order
var Executables = []string{"dotnet", "dotnet.exe"}

// Settings holds the options shared by every dotnet command
type Settings struct {
	tool.Settings

	// DiagnosticOutput enables --diagnostics ahead of the command
	DiagnosticOutput bool
}

// DotNetSettings returns s, so every struct embedding Settings satisfies SettingsProvider
func (s *Settings) DotNetSettings() *Settings {
	return s
}

// SettingsProvider is implemented by command settings that embed Settings
type SettingsProvider interface {
	tool.SettingsProvider
	DotNetSettings() *Settings
}

// Tool runs dotnet commands
type Tool struct {
	runner *tool.Runner
}

// NewTool creates a Tool
func NewTool(deps tool.Dependencies) *Tool {
	return &Tool{runner: tool.NewRunner(ToolName, Executables, deps)}
}

// Run executes dotnet with the command in b, preceded by the shared options
func (t *Tool) Run(ctx context.Context, settings SettingsProvider, b *args.Builder) error {
	if err := tool.RequireSettings("settings", settings); err != nil {
		return err
	}
	return t.runner.Run(ctx, settings, CreateArguments(settings.DotNetSettings(), b))
}

// CreateArguments prepends the global dotnet options to b and returns it
func CreateArguments(settings *Settings, b *args.Builder) *args.Builder {
	if b == nil {
		b = args.New()
	}
	if settings != nil && settings.DiagnosticOutput {
		b.Prepend("--diagnostics")
	}
	return b
}
