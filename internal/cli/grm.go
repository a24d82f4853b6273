package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"wrench.dev/wrench/internal/cli/common"
	"wrench.dev/wrench/internal/config"
	"wrench.dev/wrench/internal/gitreleasemanager"
	"wrench.dev/wrench/internal/runtime"
)

// grmOptions holds the flags shared by every grm subcommand
type grmOptions struct {
	token           string
	username        string
	password        string
	owner           string
	repository      string
	targetDirectory string
	logFilePath     string
	toolPath        string
	extraArgs       string
}

func (o *grmOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.token, "token", "", "GitHub access token")
	cmd.Flags().StringVarP(&o.username, "username", "u", "", "GitHub user name")
	cmd.Flags().StringVarP(&o.password, "password", "p", "", "GitHub password (prompted when omitted on a terminal)")
	cmd.Flags().StringVarP(&o.owner, "owner", "o", "", "Repository owner (default from config or the origin remote)")
	cmd.Flags().StringVarP(&o.repository, "repository", "r", "", "Repository name (default from config or the origin remote)")
	cmd.Flags().StringVarP(&o.targetDirectory, "target-directory", "d", "", "Directory GitReleaseManager runs against")
	cmd.Flags().StringVarP(&o.logFilePath, "log-file-path", "l", "", "File GitReleaseManager logs to")
	cmd.Flags().StringVar(&o.toolPath, "tool-path", "", "Path to the GitReleaseManager executable")
	cmd.Flags().StringVar(&o.extraArgs, "args", "", "Extra arguments appended to the command line")
	cmd.MarkFlagsMutuallyExclusive("token", "username")
}

// target is the resolved repository and credentials of one invocation
type target struct {
	creds      gitreleasemanager.Credentials
	owner      string
	repository string
}

func (o *grmOptions) resolve(rc *runtime.Context) (*target, error) {
	gh := rc.Config.GitHub

	creds, err := resolveCredentials(o.token, o.username, o.password, gh)
	if err != nil {
		if errors.Is(err, errNoCredentials) {
			rc.Splog.Tip("Set %s, or %s and %s, to skip the flags", config.EnvVar("github.token"), config.EnvVar("github.username"), config.EnvVar("github.password"))
		}
		return nil, err
	}

	owner := common.FirstNonEmpty(o.owner, gh.Owner)
	repository := common.FirstNonEmpty(o.repository, gh.Repository)
	if owner == "" || repository == "" {
		remote, err := rc.Repository()
		if err != nil {
			rc.Splog.Debug("Could not read the origin remote: %v", err)
		} else {
			owner = common.FirstNonEmpty(owner, remote.Owner)
			repository = common.FirstNonEmpty(repository, remote.Repository)
		}
	}

	return &target{creds: creds, owner: owner, repository: repository}, nil
}

func (o *grmOptions) settings(rc *runtime.Context) gitreleasemanager.Settings {
	s := gitreleasemanager.Settings{
		Settings:        rc.ToolSettings(common.FirstNonEmpty(o.toolPath, rc.Config.Tools.GitReleaseManager)),
		TargetDirectory: o.targetDirectory,
		LogFilePath:     o.logFilePath,
	}
	s.ExtraArguments = o.extraArgs
	return s
}

// newGrmCmd creates the grm command
func newGrmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "grm",
		Aliases: []string{"gitreleasemanager"},
		Short:   "Run GitReleaseManager",
		Long: `Run GitReleaseManager against a GitHub repository.

Credentials come from --token or --username/--password, then from the
github section of the configuration. Owner and repository default to the
configuration and then to the origin remote of the current repository.`,
	}

	cmd.AddCommand(newGrmLabelCmd())
	cmd.AddCommand(newGrmCloseCmd())
	cmd.AddCommand(newGrmPublishCmd())

	return cmd
}

func newGrmLabelCmd() *cobra.Command {
	opts := &grmOptions{}

	cmd := &cobra.Command{
		Use:   "label",
		Short: "Delete and recreate the default labels of a repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(rc *runtime.Context) error {
				t, err := opts.resolve(rc)
				if err != nil {
					return err
				}

				settings := &gitreleasemanager.LabelSettings{Settings: opts.settings(rc)}
				if err := gitreleasemanager.NewLabeller(rc.Deps()).Label(cmd.Context(), t.creds, t.owner, t.repository, settings); err != nil {
					return err
				}

				rc.Splog.Info("Labels updated for %s/%s", t.owner, t.repository)
				return nil
			})
		},
	}

	opts.addFlags(cmd)
	return cmd
}

func newGrmCloseCmd() *cobra.Command {
	var milestone string
	opts := &grmOptions{}

	cmd := &cobra.Command{
		Use:   "close",
		Short: "Close a milestone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(rc *runtime.Context) error {
				t, err := opts.resolve(rc)
				if err != nil {
					return err
				}

				settings := &gitreleasemanager.CloseSettings{Settings: opts.settings(rc)}
				if err := gitreleasemanager.NewMilestoneCloser(rc.Deps()).Close(cmd.Context(), t.creds, t.owner, t.repository, milestone, settings); err != nil {
					return err
				}

				rc.Splog.Info("Closed milestone %s on %s/%s", milestone, t.owner, t.repository)
				return nil
			})
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&milestone, "milestone", "m", "", "Milestone to close")
	return cmd
}

func newGrmPublishCmd() *cobra.Command {
	var tag string
	opts := &grmOptions{}

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the draft release for a tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(rc *runtime.Context) error {
				t, err := opts.resolve(rc)
				if err != nil {
					return err
				}

				settings := &gitreleasemanager.PublishSettings{Settings: opts.settings(rc)}
				if err := gitreleasemanager.NewPublisher(rc.Deps()).Publish(cmd.Context(), t.creds, t.owner, t.repository, tag, settings); err != nil {
					return err
				}

				rc.Splog.Info("Published release %s on %s/%s", tag, t.owner, t.repository)
				return nil
			})
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Tag of the release to publish")
	return cmd
}
