package bitrise

import (
	"context"

	"wrench.dev/wrench/internal/args"
	"wrench.dev/wrench/internal/tool"
)

// EnvmanSettings contains settings used by Commands
type EnvmanSettings struct {
	tool.Settings
}

// Commands runs Bitrise workflow commands
type Commands struct {
	runner   *tool.Runner
	settings *EnvmanSettings
}

// NewCommands creates Commands. A nil settings uses the defaults.
func NewCommands(deps tool.Dependencies, settings *EnvmanSettings) *Commands {
	if settings == nil {
		settings = &EnvmanSettings{}
	}
	return &Commands{
		runner:   tool.NewRunner("envman", []string{"envman"}, deps),
		settings: settings,
	}
}

// SetEnvironmentString exposes key=value to the following workflow steps
func (c *Commands) SetEnvironmentString(ctx context.Context, key, value string) error {
	return c.set(ctx, key, value, false)
}

// SetSecretEnvironmentString is SetEnvironmentString with the value masked in logs and errors
func (c *Commands) SetSecretEnvironmentString(ctx context.Context, key, value string) error {
	return c.set(ctx, key, value, true)
}

func (c *Commands) set(ctx context.Context, key, value string, secret bool) error {
	if err := tool.RequireNonBlank("key", key); err != nil {
		return err
	}

	b := args.New()
	b.Append("add")
	b.Append("--key")
	b.AppendQuoted(key)
	b.Append("--value")
	if secret {
		b.AppendQuotedSecret(value)
	} else {
		b.AppendQuoted(value)
	}

	return c.runner.Run(ctx, c.settings, b)
}
