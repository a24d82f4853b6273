// Package gitreleasemanager wraps the GitReleaseManager command-line tool.
//
// Every operation validates its parameters before building any arguments, renders
// credentials as secrets and shares the owner/repository/target/log arguments.
package gitreleasemanager

import (
	"context"

	"wrench.dev/wrench/internal/args"
	"wrench.dev/wrench/internal/tool"
)

// ToolName is the display name used in logs and errors
const ToolName = "GitReleaseManager"

// Executables lists the names GitReleaseManager is installed under, in lookup order
var Executables = []string{"dotnet-gitreleasemanager", "gitreleasemanager", "GitReleaseManager.exe", "grm"}

// Settings holds the options shared by every GitReleaseManager command
type Settings struct {
	tool.Settings

	// TargetDirectory is passed as -d, made absolute
	TargetDirectory string
	// LogFilePath is passed as -l, made absolute
	LogFilePath string
}

// gitReleaseManagerTool holds the runner shared by the command types
type gitReleaseManagerTool struct {
	runner *tool.Runner
}

func newTool(deps tool.Dependencies) gitReleaseManagerTool {
	return gitReleaseManagerTool{runner: tool.NewRunner(ToolName, Executables, deps)}
}

// newBuilder starts the arguments for subcommand with the credential arguments
func newBuilder(subcommand string, creds Credentials) *args.Builder {
	b := args.New()
	b.Append(subcommand)
	creds.appendTo(b)
	return b
}

// option is a command-specific flag and its quoted value
type option struct {
	flag  string
	value string
}

// appendCommonArguments appends the owner and repository, then any command-specific
// options, then the optional target directory and log file path
func (t gitReleaseManagerTool) appendCommonArguments(b *args.Builder, owner, repository string, settings *Settings, options ...option) {
	b.Append("-o")
	b.AppendQuoted(owner)

	b.Append("-r")
	b.AppendQuoted(repository)

	for _, o := range options {
		b.Append(o.flag)
		b.AppendQuoted(o.value)
	}

	env := t.runner.Environment()

	// Target Directory
	if settings.TargetDirectory != "" {
		b.Append("-d")
		b.AppendQuoted(env.MakeAbsolute(settings.TargetDirectory))
	}

	// Log File Path
	if settings.LogFilePath != "" {
		b.Append("-l")
		b.AppendQuoted(env.MakeAbsolute(settings.LogFilePath))
	}
}

func (t gitReleaseManagerTool) run(ctx context.Context, settings tool.SettingsProvider, b *args.Builder) error {
	return t.runner.Run(ctx, settings, b)
}

func validateRepository(creds Credentials, owner, repository string) error {
	if err := validateCredentials(creds); err != nil {
		return err
	}
	return tool.RequireAll(
		tool.Param{Name: "owner", Value: owner},
		tool.Param{Name: "repository", Value: repository},
	)
}
