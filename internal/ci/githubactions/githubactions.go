// Package githubactions reads the GitHub Actions build environment.
package githubactions

import (
	"strconv"

	"wrench.dev/wrench/internal/ci"
	"wrench.dev/wrench/internal/environment"
)

// Provider detects GitHub Actions and exposes its environment
type Provider struct {
	env ci.EnvReader
}

var _ ci.Provider = (*Provider)(nil)
var _ ci.Reporter = (*Provider)(nil)

// New creates a Provider reading from env. A nil env reads the process environment.
func New(env environment.Accessor) *Provider {
	return &Provider{env: ci.NewEnvReader(env)}
}

// Name implements ci.Provider
func (p *Provider) Name() string {
	return "GitHub Actions"
}

// IsRunning reports whether GITHUB_ACTIONS is "true". A nil Provider is never running.
func (p *Provider) IsRunning() bool {
	if p == nil {
		return false
	}
	return p.env.Bool("GITHUB_ACTIONS")
}

// Repository returns GITHUB_REPOSITORY, in owner/name form
func (p *Provider) Repository() string { return p.env.String("GITHUB_REPOSITORY") }

// Workspace returns GITHUB_WORKSPACE
func (p *Provider) Workspace() string { return p.env.String("GITHUB_WORKSPACE") }

// RunNumber returns GITHUB_RUN_NUMBER, or 0
func (p *Provider) RunNumber() int { return p.env.Int("GITHUB_RUN_NUMBER") }

// SHA returns GITHUB_SHA
func (p *Provider) SHA() string { return p.env.String("GITHUB_SHA") }

// Ref returns GITHUB_REF
func (p *Provider) Ref() string { return p.env.String("GITHUB_REF") }

// Fields implements ci.Reporter
func (p *Provider) Fields() []ci.Field {
	return []ci.Field{
		{Section: "Repository", Variable: "GITHUB_REPOSITORY", Value: p.Repository()},
		{Section: "Repository", Variable: "GITHUB_SHA", Value: p.SHA()},
		{Section: "Repository", Variable: "GITHUB_REF", Value: p.Ref()},
		{Section: "Build", Variable: "GITHUB_RUN_NUMBER", Value: strconv.Itoa(p.RunNumber())},
		{Section: "Build", Variable: "GITHUB_WORKSPACE", Value: p.Workspace()},
	}
}
