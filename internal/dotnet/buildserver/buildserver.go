// Package buildserver shuts down the build servers started by the dotnet CLI.
package buildserver

import (
	"context"

	"wrench.dev/wrench/internal/args"
	"wrench.dev/wrench/internal/dotnet"
	"wrench.dev/wrench/internal/tool"
)

// Settings contains settings used by BuildServer.
// A nil toggle and a false toggle both leave the flag out.
type Settings struct {
	dotnet.Settings

	// MSBuild shuts down the MSBuild build server
	MSBuild *bool
	// Razor shuts down the Razor build server
	Razor *bool
	// VBCSCompiler shuts down the VB/C# compiler build server
	VBCSCompiler *bool
}

// BuildServer runs `dotnet build-server`
type BuildServer struct {
	tool *dotnet.Tool
}

// New creates a BuildServer
func New(deps tool.Dependencies) *BuildServer {
	return &BuildServer{tool: dotnet.NewTool(deps)}
}

// Shutdown runs `dotnet build-server shutdown`. With no toggles set dotnet
// shuts down every build server it knows about.
func (s *BuildServer) Shutdown(ctx context.Context, settings *Settings) error {
	if err := tool.RequireSettings("settings", settings); err != nil {
		return err
	}
	return s.tool.Run(ctx, settings, shutdownArguments(settings))
}

func shutdownArguments(settings *Settings) *args.Builder {
	b := args.New()
	b.Append("build-server")
	b.Append("shutdown")

	if isSet(settings.MSBuild) {
		b.Append("--msbuild")
	}
	if isSet(settings.Razor) {
		b.Append("--razor")
	}
	if isSet(settings.VBCSCompiler) {
		b.Append("--vbcscompiler")
	}
	return b
}

func isSet(v *bool) bool {
	return v != nil && *v
}

// Bool returns a pointer to v, for filling the optional toggles
func Bool(v bool) *bool {
	return &v
}
