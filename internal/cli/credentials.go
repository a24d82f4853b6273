package cli

import (
	"errors"
	"fmt"

	"wrench.dev/wrench/internal/cli/common"
	"wrench.dev/wrench/internal/config"
	"wrench.dev/wrench/internal/gitreleasemanager"
	"wrench.dev/wrench/internal/tui"
	"wrench.dev/wrench/internal/utils"
)

var errNoCredentials = errors.New("no GitHub credentials: pass --token or --username and --password")

// Prompt hooks, replaced in tests
var (
	isInteractive = utils.IsInteractive
	promptText    = func(prompt string, secret bool) (string, error) {
		return tui.PromptTextInput(prompt, "", secret)
	}
	promptSelect = tui.PromptSelect
)

const (
	credentialModeToken    = "token"
	credentialModePassword = "password"
)

// resolveCredentials picks credentials from flags, then configuration, then
// interactive prompts. Explicit flags always win over configuration.
func resolveCredentials(token, username, password string, cfg config.GitHubConfig) (gitreleasemanager.Credentials, error) {
	switch {
	case token != "":
		return gitreleasemanager.Token{Token: token}, nil
	case username != "":
		return usernamePassword(username, password)
	case cfg.Token != "":
		return gitreleasemanager.Token{Token: cfg.Token}, nil
	case cfg.Username != "":
		return usernamePassword(cfg.Username, common.FirstNonEmpty(password, cfg.Password))
	}

	if !isInteractive() {
		return nil, errNoCredentials
	}

	mode, err := promptSelect("How should GitReleaseManager authenticate?", []tui.SelectOption{
		{Label: "GitHub access token", Value: credentialModeToken},
		{Label: "User name and password", Value: credentialModePassword},
	})
	if err != nil {
		return nil, err
	}

	if mode == credentialModeToken {
		t, err := promptText("GitHub access token", true)
		if err != nil {
			return nil, err
		}
		return gitreleasemanager.Token{Token: t}, nil
	}

	user, err := promptText("GitHub user name", false)
	if err != nil {
		return nil, err
	}
	return usernamePassword(user, "")
}

func usernamePassword(username, password string) (gitreleasemanager.Credentials, error) {
	if password == "" && isInteractive() {
		p, err := promptText(fmt.Sprintf("Password for %s", username), true)
		if err != nil {
			return nil, err
		}
		password = p
	}
	return gitreleasemanager.UsernamePassword{UserName: username, Password: password}, nil
}
