package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wrench.dev/wrench/internal/args"
	"wrench.dev/wrench/internal/ci"
	"wrench.dev/wrench/internal/ci/bitrise"
	"wrench.dev/wrench/internal/ci/githubactions"
	"wrench.dev/wrench/internal/cli/common"
	"wrench.dev/wrench/internal/runtime"
	"wrench.dev/wrench/internal/tui"
	"wrench.dev/wrench/internal/utils"
)

// newCICmd creates the ci command
func newCICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ci",
		Short: "Inspect and talk to the CI system",
	}

	cmd.AddCommand(newCIInfoCmd())
	cmd.AddCommand(newBitriseCmd())

	return cmd
}

func providers(rc *runtime.Context) []ci.Provider {
	env := rc.Environment.Accessor()
	return []ci.Provider{
		bitrise.New(env),
		githubactions.New(env),
	}
}

func newCIInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the detected CI provider and its build values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(rc *runtime.Context) error {
				p, ok := ci.Detect(providers(rc)...)
				if !ok {
					rc.Splog.Info("%s", tui.ColorYellow("No CI provider detected."))
					return nil
				}

				rc.Splog.Info("Running on %s", tui.ColorCyan(p.Name()))
				reporter, ok := p.(ci.Reporter)
				if !ok {
					return nil
				}
				for _, section := range renderFields(reporter.Fields()) {
					rc.Splog.Newline()
					rc.Splog.Page(section)
				}
				return nil
			})
		},
	}
}

// renderFields groups fields by section, in first-seen order, and masks secrets
func renderFields(fields []ci.Field) []string {
	var order []string
	rows := map[string][]tui.KeyValue{}
	for _, f := range fields {
		if _, seen := rows[f.Section]; !seen {
			order = append(order, f.Section)
		}
		value := f.Value
		if f.Secret && value != "" {
			value = args.Mask
		}
		rows[f.Section] = append(rows[f.Section], tui.KeyValue{Key: f.Variable, Value: value})
	}

	out := make([]string, 0, len(order))
	for _, section := range order {
		out = append(out, tui.RenderSection(section, rows[section]))
	}
	return out
}

func newBitriseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bitrise",
		Short: "Run Bitrise workflow commands",
	}
	cmd.AddCommand(newBitriseSetEnvCmd())
	return cmd
}

func newBitriseSetEnvCmd() *cobra.Command {
	var (
		secret   bool
		toolPath string
	)

	cmd := &cobra.Command{
		Use:   "set-env KEY [VALUE]",
		Short: "Expose an environment variable to the following workflow steps",
		Long: `Expose an environment variable to the following workflow steps through envman.

When VALUE is omitted it is read from standard input, which keeps secrets
out of the process list.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return common.Run(cmd, func(rc *runtime.Context) error {
				key := argv[0]

				var value string
				if len(argv) == 2 {
					value = argv[1]
				} else {
					v, err := readValue(cmd.InOrStdin())
					if err != nil {
						return fmt.Errorf("failed to read value from stdin: %w", err)
					}
					value = v
				}

				settings := &bitrise.EnvmanSettings{Settings: rc.ToolSettings(common.FirstNonEmpty(toolPath, rc.Config.Tools.Envman))}
				commands := bitrise.NewCommands(rc.Deps(), settings)

				var err error
				if secret {
					err = commands.SetSecretEnvironmentString(cmd.Context(), key, value)
				} else {
					err = commands.SetEnvironmentString(cmd.Context(), key, value)
				}
				if err != nil {
					return err
				}

				rc.Splog.Debug("Set %s", key)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&secret, "secret", false, "Mask the value in logs and errors")
	cmd.Flags().StringVar(&toolPath, "tool-path", "", "Path to the envman executable")

	return cmd
}

func readValue(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok {
		return utils.ReadValue(f)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r"), nil
}
