package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"wrench.dev/wrench/internal/config"
	"wrench.dev/wrench/internal/environment"
	"wrench.dev/wrench/internal/process"
	"wrench.dev/wrench/internal/runtime"
	"wrench.dev/wrench/internal/tui"
)

// Options replaces the process-level collaborators of the runtime context.
// Zero fields keep the defaults.
type Options struct {
	Environment *environment.Environment
	Process     process.Runner
	Locator     process.Locator
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	return NewRootCmdWithOptions(version, Options{})
}

// NewRootCmdWithOptions creates the root cobra command with injected collaborators
func NewRootCmdWithOptions(version string, opts Options) *cobra.Command {
	var (
		configFile string
		debug      bool
		logFile    string
	)

	rootCmd := &cobra.Command{
		Use:   "wrench",
		Short: "Wrench runs build tools with typed settings and redacted logging",
		Long: `Wrench runs build tools with typed settings and redacted logging.

It wraps GitReleaseManager, the dotnet build server and Bitrise's envman, and
reports what it knows about the CI system it runs under.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			dir := ""
			if opts.Environment != nil {
				dir = opts.Environment.WorkingDirectory()
			}

			cfg, err := config.Load(config.Options{ConfigFile: configFile, Dir: dir})
			if err != nil {
				return err
			}

			level := tui.ParseLevel(cfg.Log.Level)
			if debug {
				level = slog.LevelDebug
			}
			if logFile == "" {
				logFile = cfg.Log.File
			}

			splog, err := tui.NewSplogWithLevel(cmd.OutOrStdout(), logFile, level)
			if err != nil {
				return err
			}

			if splog.HasLogFile() {
				splog.Debug("Logging to %s", logFile)
			}

			rc := runtime.NewContext(cfg, splog, cmd.OutOrStdout())
			if opts.Environment != nil {
				rc.Environment = opts.Environment
			}
			if opts.Process != nil {
				rc.Process = opts.Process
			}
			if opts.Locator != nil {
				rc.Locator = opts.Locator
			}

			cmd.SetContext(runtime.WithContext(cmd.Context(), rc))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file (default ./wrench.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug output, including redacted command lines")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write a rotating debug log (--log-file=PATH, or the default path when no value is given)")
	rootCmd.PersistentFlags().Lookup("log-file").NoOptDefVal = tui.GetLogFilePath()

	rootCmd.AddCommand(newGrmCmd())
	rootCmd.AddCommand(newDotnetCmd())
	rootCmd.AddCommand(newCICmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
