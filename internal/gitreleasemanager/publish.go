package gitreleasemanager

import (
	"context"

	"wrench.dev/wrench/internal/tool"
)

// PublishSettings contains settings used by Publisher
type PublishSettings struct {
	Settings
}

// Publisher publishes the draft release for a tag
type Publisher struct {
	gitReleaseManagerTool
}

// NewPublisher creates a Publisher
func NewPublisher(deps tool.Dependencies) *Publisher {
	return &Publisher{gitReleaseManagerTool: newTool(deps)}
}

// Publish runs `publish` for tagName
func (p *Publisher) Publish(ctx context.Context, creds Credentials, owner, repository, tagName string, settings *PublishSettings) error {
	if err := validateRepository(creds, owner, repository); err != nil {
		return err
	}
	if err := tool.RequireNonBlank("tagName", tagName); err != nil {
		return err
	}
	if err := tool.RequireSettings("settings", settings); err != nil {
		return err
	}

	b := newBuilder("publish", creds)
	p.appendCommonArguments(b, owner, repository, &settings.Settings, option{flag: "-t", value: tagName})

	return p.run(ctx, settings, b)
}
