package cli

import (
	"github.com/spf13/cobra"

	"wrench.dev/wrench/internal/args"
	"wrench.dev/wrench/internal/cli/common"
	"wrench.dev/wrench/internal/runtime"
	"wrench.dev/wrench/internal/tui"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
	}
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration with credentials masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(rc *runtime.Context) error {
				cfg := rc.Config

				rc.Splog.Page(tui.RenderSection("log", []tui.KeyValue{
					{Key: "level", Value: cfg.Log.Level},
					{Key: "file", Value: cfg.Log.File},
				}))
				rc.Splog.Newline()
				rc.Splog.Page(tui.RenderSection("github", []tui.KeyValue{
					{Key: "token", Value: mask(cfg.GitHub.Token)},
					{Key: "username", Value: cfg.GitHub.Username},
					{Key: "password", Value: mask(cfg.GitHub.Password)},
					{Key: "owner", Value: cfg.GitHub.Owner},
					{Key: "repository", Value: cfg.GitHub.Repository},
				}))
				rc.Splog.Newline()

				timeout := ""
				if cfg.Tools.Timeout > 0 {
					timeout = cfg.Tools.Timeout.String()
				}
				searchPaths := ""
				if len(cfg.Tools.SearchPaths) > 0 {
					searchPaths = args.New().AppendTokens(quotedAll(cfg.Tools.SearchPaths)...).String()
				}
				rc.Splog.Page(tui.RenderSection("tools", []tui.KeyValue{
					{Key: "gitreleasemanager", Value: cfg.Tools.GitReleaseManager},
					{Key: "dotnet", Value: cfg.Tools.DotNet},
					{Key: "envman", Value: cfg.Tools.Envman},
					{Key: "timeout", Value: timeout},
					{Key: "search_paths", Value: searchPaths},
				}))
				return nil
			})
		},
	}
}

func mask(v string) string {
	if v == "" {
		return ""
	}
	return args.Mask
}

func quotedAll(values []string) []args.Token {
	tokens := make([]args.Token, len(values))
	for i, v := range values {
		tokens[i] = args.Token{Value: v, Kind: args.Quoted}
	}
	return tokens
}
