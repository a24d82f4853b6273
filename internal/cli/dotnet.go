package cli

import (
	"github.com/spf13/cobra"

	"wrench.dev/wrench/internal/cli/common"
	"wrench.dev/wrench/internal/dotnet/buildserver"
	"wrench.dev/wrench/internal/runtime"
)

// newDotnetCmd creates the dotnet command
func newDotnetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dotnet",
		Short: "Run dotnet CLI commands",
	}

	buildServer := &cobra.Command{
		Use:   "build-server",
		Short: "Manage the build servers started by the dotnet CLI",
	}
	buildServer.AddCommand(newBuildServerShutdownCmd())
	cmd.AddCommand(buildServer)

	return cmd
}

func newBuildServerShutdownCmd() *cobra.Command {
	var (
		msbuild      bool
		razor        bool
		vbcscompiler bool
		diagnostics  bool
		toolPath     string
		extraArgs    string
	)

	cmd := &cobra.Command{
		Use:   "shutdown",
		Short: "Shut down build servers",
		Long: `Shut down build servers started by the dotnet CLI.

Without --msbuild, --razor or --vbcscompiler every build server is shut down.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(rc *runtime.Context) error {
				settings := &buildserver.Settings{}
				settings.Settings.Settings = rc.ToolSettings(common.FirstNonEmpty(toolPath, rc.Config.Tools.DotNet))
				settings.ExtraArguments = extraArgs
				settings.DiagnosticOutput = diagnostics

				// Only flags given on the command line are forwarded
				if cmd.Flags().Changed("msbuild") {
					settings.MSBuild = buildserver.Bool(msbuild)
				}
				if cmd.Flags().Changed("razor") {
					settings.Razor = buildserver.Bool(razor)
				}
				if cmd.Flags().Changed("vbcscompiler") {
					settings.VBCSCompiler = buildserver.Bool(vbcscompiler)
				}

				return buildserver.New(rc.Deps()).Shutdown(cmd.Context(), settings)
			})
		},
	}

	cmd.Flags().BoolVar(&msbuild, "msbuild", false, "Shut down the MSBuild build server")
	cmd.Flags().BoolVar(&razor, "razor", false, "Shut down the Razor build server")
	cmd.Flags().BoolVar(&vbcscompiler, "vbcscompiler", false, "Shut down the VB/C# compiler build server")
	cmd.Flags().BoolVar(&diagnostics, "diagnostics", false, "Enable dotnet diagnostic output")
	cmd.Flags().StringVar(&toolPath, "tool-path", "", "Path to the dotnet executable")
	cmd.Flags().StringVar(&extraArgs, "args", "", "Extra arguments appended to the command line")

	return cmd
}
