package buildserver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"wrench.dev/wrench/internal/args"
	"wrench.dev/wrench/internal/dotnet/buildserver"
	wrencherrors "wrench.dev/wrench/internal/errors"
	"wrench.dev/wrench/testhelpers"
)

func TestShutdown(t *testing.T) {
	tests := []struct {
		name     string
		settings *buildserver.Settings
		expected []string
	}{
		{
			name:     "no toggles",
			settings: &buildserver.Settings{},
			expected: []string{"build-server", "shutdown"},
		},
		{
			name:     "all toggles",
			settings: &buildserver.Settings{MSBuild: buildserver.Bool(true), Razor: buildserver.Bool(true), VBCSCompiler: buildserver.Bool(true)},
			expected: []string{"build-server", "shutdown", "--msbuild", "--razor", "--vbcscompiler"},
		},
		{
			name:     "false toggles are omitted",
			settings: &buildserver.Settings{MSBuild: buildserver.Bool(false), Razor: buildserver.Bool(true)},
			expected: []string{"build-server", "shutdown", "--razor"},
		},
		{
			name: "diagnostics goes first",
			settings: func() *buildserver.Settings {
				s := &buildserver.Settings{VBCSCompiler: buildserver.Bool(true)}
				s.DiagnosticOutput = true
				return s
			}(),
			expected: []string{"--diagnostics", "build-server", "shutdown", "--vbcscompiler"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := testhelpers.NewToolHarness(t, nil, "dotnet")
			err := buildserver.New(h.Deps).Shutdown(context.Background(), tc.settings)
			require.NoError(t, err)

			inv, ok := h.Process.Last()
			require.True(t, ok)
			require.Equal(t, h.Abs("bin", "dotnet"), inv.FilePath)
			require.Equal(t, tc.expected, inv.Args())
		})
	}
}

func TestShutdownNilSettings(t *testing.T) {
	h := testhelpers.NewToolHarness(t, nil, "dotnet")

	err := buildserver.New(h.Deps).Shutdown(context.Background(), nil)
	require.ErrorIs(t, err, wrencherrors.ErrInvalidArgument)

	var argErr *wrencherrors.ArgumentError
	require.True(t, errors.As(err, &argErr))
	require.Equal(t, "settings", argErr.Param)
	require.Empty(t, h.Process.Invocations())
}

func TestShutdownHonoursToolSettings(t *testing.T) {
	h := testhelpers.NewToolHarness(t, nil)

	settings := &buildserver.Settings{MSBuild: buildserver.Bool(true)}
	settings.ToolPath = "tools/dotnet"
	settings.WorkingDirectory = "src"
	settings.ExtraArguments = `--verbosity "minimal"`
	settings.ArgumentCustomization = func(b *args.Builder) *args.Builder {
		return b.Append("--nologo")
	}

	err := buildserver.New(h.Deps).Shutdown(context.Background(), settings)
	require.NoError(t, err)

	inv, _ := h.Process.Last()
	require.Equal(t, h.Abs("tools", "dotnet"), inv.FilePath)
	require.Equal(t, h.Abs("src"), inv.Settings.WorkingDirectory)
	require.Equal(t, []string{"build-server", "shutdown", "--msbuild", "--verbosity", "minimal", "--nologo"}, inv.Args())
}
