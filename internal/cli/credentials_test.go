package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wrench.dev/wrench/internal/config"
	"wrench.dev/wrench/internal/gitreleasemanager"
	"wrench.dev/wrench/internal/tui"
)

type promptScript struct {
	interactive bool
	selected    string
	answers     map[string]string
	asked       []string
}

func (s *promptScript) install(t *testing.T) {
	t.Helper()
	oldInteractive, oldText, oldSelect := isInteractive, promptText, promptSelect
	t.Cleanup(func() {
		isInteractive, promptText, promptSelect = oldInteractive, oldText, oldSelect
	})

	isInteractive = func() bool { return s.interactive }
	promptText = func(prompt string, _ bool) (string, error) {
		s.asked = append(s.asked, prompt)
		return s.answers[prompt], nil
	}
	promptSelect = func(_ string, _ []tui.SelectOption) (string, error) {
		return s.selected, nil
	}
}

func TestResolveCredentialsPrecedence(t *testing.T) {
	(&promptScript{}).install(t)
	cfg := config.GitHubConfig{Token: "cfg-token", Username: "cfg-user", Password: "cfg-pw"}

	creds, err := resolveCredentials("flag-token", "", "", cfg)
	require.NoError(t, err)
	require.Equal(t, gitreleasemanager.Token{Token: "flag-token"}, creds)

	creds, err = resolveCredentials("", "flag-user", "flag-pw", cfg)
	require.NoError(t, err)
	require.Equal(t, gitreleasemanager.UsernamePassword{UserName: "flag-user", Password: "flag-pw"}, creds)

	creds, err = resolveCredentials("", "", "", cfg)
	require.NoError(t, err)
	require.Equal(t, gitreleasemanager.Token{Token: "cfg-token"}, creds)

	creds, err = resolveCredentials("", "", "", config.GitHubConfig{Username: "cfg-user", Password: "cfg-pw"})
	require.NoError(t, err)
	require.Equal(t, gitreleasemanager.UsernamePassword{UserName: "cfg-user", Password: "cfg-pw"}, creds)

	creds, err = resolveCredentials("", "", "flag-pw", config.GitHubConfig{Username: "cfg-user", Password: "cfg-pw"})
	require.NoError(t, err)
	require.Equal(t, gitreleasemanager.UsernamePassword{UserName: "cfg-user", Password: "flag-pw"}, creds)
}

func TestResolveCredentialsPasswordFlagWithConfiguredUser(t *testing.T) {
	script := &promptScript{interactive: true}
	script.install(t)

	creds, err := resolveCredentials("", "", "flag-pw", config.GitHubConfig{Username: "cfg-user"})
	require.NoError(t, err)
	require.Equal(t, gitreleasemanager.UsernamePassword{UserName: "cfg-user", Password: "flag-pw"}, creds)
	require.Empty(t, script.asked)
}

func TestResolveCredentialsPromptsForPassword(t *testing.T) {
	script := &promptScript{
		interactive: true,
		answers:     map[string]string{"Password for bob": "hunter2"},
	}
	script.install(t)

	creds, err := resolveCredentials("", "bob", "", config.GitHubConfig{})
	require.NoError(t, err)
	require.Equal(t, gitreleasemanager.UsernamePassword{UserName: "bob", Password: "hunter2"}, creds)
	require.Equal(t, []string{"Password for bob"}, script.asked)
}

func TestResolveCredentialsInteractiveToken(t *testing.T) {
	script := &promptScript{
		interactive: true,
		selected:    credentialModeToken,
		answers:     map[string]string{"GitHub access token": "typed"},
	}
	script.install(t)

	creds, err := resolveCredentials("", "", "", config.GitHubConfig{})
	require.NoError(t, err)
	require.Equal(t, gitreleasemanager.Token{Token: "typed"}, creds)
}

func TestResolveCredentialsInteractivePassword(t *testing.T) {
	script := &promptScript{
		interactive: true,
		selected:    credentialModePassword,
		answers:     map[string]string{"GitHub user name": "alice", "Password for alice": "pw"},
	}
	script.install(t)

	creds, err := resolveCredentials("", "", "", config.GitHubConfig{})
	require.NoError(t, err)
	require.Equal(t, gitreleasemanager.UsernamePassword{UserName: "alice", Password: "pw"}, creds)
}

func TestResolveCredentialsNonInteractive(t *testing.T) {
	(&promptScript{}).install(t)

	_, err := resolveCredentials("", "", "", config.GitHubConfig{})
	require.ErrorIs(t, err, errNoCredentials)
}
