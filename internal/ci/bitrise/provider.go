// Package bitrise reads the Bitrise build environment and sets
// workflow environment variables through envman.
package bitrise

import (
	"wrench.dev/wrench/internal/ci"
	"wrench.dev/wrench/internal/environment"
)

// Provider detects Bitrise and exposes its environment
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
	return "Bitrise"
}

// IsRunning reports whether BITRISE_BUILD_URL is set. A nil Provider is never running.
func (p *Provider) IsRunning() bool {
	if p == nil {
		return false
	}
	return p.env.String("BITRISE_BUILD_URL") != ""
}

// Environment returns the Bitrise views
func (p *Provider) Environment() EnvironmentInfo {
	return newEnvironmentInfo(p.env)
}

// Fields implements ci.Reporter
func (p *Provider) Fields() []ci.Field {
	return p.Environment().Fields()
}
