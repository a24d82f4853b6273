package runtime

import (
	"context"
	"fmt"
	"io"

	"wrench.dev/wrench/internal/config"
	"wrench.dev/wrench/internal/environment"
	"wrench.dev/wrench/internal/git"
	"wrench.dev/wrench/internal/process"
	"wrench.dev/wrench/internal/tool"
	"wrench.dev/wrench/internal/tui"
)

// Context provides access to configuration, logging and process execution for commands
type Context struct {
	Config      *config.Config
	Environment *environment.Environment
	Splog       *tui.Splog
	Process     process.Runner
	Locator     process.Locator
	// Output receives tool output as it is produced
	Output io.Writer
}

// NewContext creates a context backed by the process environment and the .env overlay of cfg
func NewContext(cfg *config.Config, splog *tui.Splog, out io.Writer) *Context {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if splog == nil {
		splog = tui.NewSplog()
	}
	return &Context{
		Config:      cfg,
		Environment: environment.New(cfg.Env(), ""),
		Splog:       splog,
		Process:     process.NewExecRunner(),
		Locator:     process.NewPathLocator(cfg.Tools.SearchPaths...),
		Output:      out,
	}
}

// Deps returns the dependencies tool runners are built from
func (c *Context) Deps() tool.Dependencies {
	return tool.Dependencies{
		Environment: c.Environment,
		Process:     c.Process,
		Locator:     c.Locator,
		Splog:       c.Splog,
		Output:      c.Output,
	}
}

// ToolSettings returns the base settings for a tool, applying the configured
// path override and timeout
func (c *Context) ToolSettings(toolPath string) tool.Settings {
	return tool.Settings{
		ToolPath: toolPath,
		Timeout:  c.Config.Tools.Timeout,
	}
}

// Repository returns the owner and repository of the origin remote of the
// working directory, or an error when it cannot be determined
func (c *Context) Repository() (*git.RemoteInfo, error) {
	return git.DetectRepository(c.Environment.WorkingDirectory())
}

type contextKey struct{}

// WithContext stores rc in ctx
func WithContext(ctx context.Context, rc *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// GetContext returns the Context stored in ctx
func GetContext(ctx context.Context) (*Context, error) {
	if ctx != nil {
		if rc, ok := ctx.Value(contextKey{}).(*Context); ok && rc != nil {
			return rc, nil
		}
	}
	return nil, fmt.Errorf("wrench runtime is not initialized")
}
