// Package tool implements the shared runner used by every wrapped executable.
//
// A concrete tool validates its parameters, assembles an args.Builder from its
// settings and hands both to Runner.Run, which locates the executable, applies
// user customisation, logs the redacted command line and delegates to a
// process.Runner.
package tool

import (
	"time"

	"wrench.dev/wrench/internal/args"
)

// Settings holds the options shared by every tool invocation.
// Tool-specific settings embed it.
type Settings struct {
	// ToolPath overrides executable discovery
	ToolPath string
	// WorkingDirectory is resolved against the environment; empty means the environment's directory
	WorkingDirectory string
	// EnvironmentVariables are added to the inherited process environment
	EnvironmentVariables map[string]string
	// Timeout bounds the process; zero uses the process runner default
	Timeout time.Duration
	// ExtraArguments is split with shell rules and appended after the generated arguments
	ExtraArguments string
	// ArgumentCustomization may rewrite the generated arguments as a last step
	ArgumentCustomization func(*args.Builder) *args.Builder
}

// ToolSettings returns s, so *Settings satisfies SettingsProvider
func (s *Settings) ToolSettings() *Settings {
	return s
}

// SettingsProvider is implemented by every settings struct that embeds Settings
type SettingsProvider interface {
	ToolSettings() *Settings
}
