package gitreleasemanager

import (
	"context"

	"wrench.dev/wrench/internal/tool"
)

// CloseSettings contains settings used by MilestoneCloser
type CloseSettings struct {
	Settings
}

// MilestoneCloser closes a milestone
type MilestoneCloser struct {
	gitReleaseManagerTool
}

// NewMilestoneCloser creates a MilestoneCloser
func NewMilestoneCloser(deps tool.Dependencies) *MilestoneCloser {
	return &MilestoneCloser{gitReleaseManagerTool: newTool(deps)}
}

// Close runs `close` for milestone
func (c *MilestoneCloser) Close(ctx context.Context, creds Credentials, owner, repository, milestone string, settings *CloseSettings) error {
	if err := validateRepository(creds, owner, repository); err != nil {
		return err
	}
	if err := tool.RequireNonBlank("milestone", milestone); err != nil {
		return err
	}
	if err := tool.RequireSettings("settings", settings); err != nil {
		return err
	}

	b := newBuilder("close", creds)
	c.appendCommonArguments(b, owner, repository, &settings.Settings, option{flag: "-m", value: milestone})

	return c.run(ctx, settings, b)
}
