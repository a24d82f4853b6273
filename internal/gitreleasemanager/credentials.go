package gitreleasemanager

import (
	"wrench.dev/wrench/internal/args"
	"wrench.dev/wrench/internal/tool"
)

// Credentials authenticates GitReleaseManager against GitHub.
// The implementations are UsernamePassword and Token.
type Credentials interface {
	validate() error
	appendTo(b *args.Builder)
}

// UsernamePassword authenticates with a GitHub user name and password
type UsernamePassword struct {
	UserName string
	Password string
}

func (c UsernamePassword) validate() error {
	return tool.RequireAll(
		tool.Param{Name: "userName", Value: c.UserName},
		tool.Param{Name: "password", Value: c.Password},
	)
}

func (c UsernamePassword) appendTo(b *args.Builder) {
	b.Append("-u")
	b.AppendQuoted(c.UserName)

	b.Append("-p")
	b.AppendQuotedSecret(c.Password)
}

// Token authenticates with a GitHub access token
type Token struct {
	Token string
}

func (c Token) validate() error {
	return tool.RequireNonBlank("token", c.Token)
}

func (c Token) appendTo(b *args.Builder) {
	b.Append("--token")
	b.AppendQuotedSecret(c.Token)
}

func validateCredentials(c Credentials) error {
	if err := tool.RequireSettings("credentials", c); err != nil {
		return err
	}
	return c.validate()
}
