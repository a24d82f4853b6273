package gitreleasemanager

import (
	"context"

	"wrench.dev/wrench/internal/args"
	"wrench.dev/wrench/internal/tool"
)

// LabelSettings contains settings used by Labeller
type LabelSettings struct {
	Settings
}

// Labeller deletes and recreates the default labels of a repository
type Labeller struct {
	gitReleaseManagerTool
}

// NewLabeller creates a Labeller
func NewLabeller(deps tool.Dependencies) *Labeller {
	return &Labeller{gitReleaseManagerTool: newTool(deps)}
}

// Label runs `label`. Parameters are validated before any argument is built.
func (l *Labeller) Label(ctx context.Context, creds Credentials, owner, repository string, settings *LabelSettings) error {
	if err := validateRepository(creds, owner, repository); err != nil {
		return err
	}
	if err := tool.RequireSettings("settings", settings); err != nil {
		return err
	}

	return l.run(ctx, settings, l.arguments(creds, owner, repository, settings))
}

func (l *Labeller) arguments(creds Credentials, owner, repository string, settings *LabelSettings) *args.Builder {
	b := newBuilder("label", creds)
	l.appendCommonArguments(b, owner, repository, &settings.Settings)
	return b
}
