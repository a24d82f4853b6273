package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"wrench.dev/wrench/internal/cli"
	"wrench.dev/wrench/internal/environment"
	wrencherrors "wrench.dev/wrench/internal/errors"
	"wrench.dev/wrench/testhelpers"
)

type wrenchRun struct {
	dir     string
	env     environment.Map
	stdin   io.Reader
	process *testhelpers.FakeProcessRunner
}

func newWrenchRun(t *testing.T) *wrenchRun {
	t.Helper()
	t.Setenv("WRENCH_NON_INTERACTIVE", "1")
	for _, name := range []string{"WRENCH_GITHUB_TOKEN", "WRENCH_GITHUB_USERNAME", "WRENCH_GITHUB_PASSWORD", "WRENCH_GITHUB_OWNER", "WRENCH_GITHUB_REPOSITORY", "WRENCH_LOG_LEVEL", "WRENCH_LOG_FILE"} {
		t.Setenv(name, "")
	}
	lipgloss.SetColorProfile(termenv.Ascii)

	return &wrenchRun{
		dir:     t.TempDir(),
		env:     environment.Map{},
		process: testhelpers.NewFakeProcessRunner(),
	}
}

func (r *wrenchRun) exec(argv ...string) (string, error) {
	cmd := cli.NewRootCmdWithOptions("test", cli.Options{
		Environment: environment.New(r.env, r.dir),
		Process:     r.process,
		Locator: testhelpers.FakeLocator{
			"dotnet-gitreleasemanager": "/tools/grm",
			"dotnet":                   "/tools/dotnet",
			"envman":                   "/tools/envman",
		},
	})

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	if r.stdin != nil {
		cmd.SetIn(r.stdin)
	}
	cmd.SetArgs(argv)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (r *wrenchRun) lastArgs(t *testing.T) []string {
	t.Helper()
	inv, ok := r.process.Last()
	require.True(t, ok, "expected a process invocation")
	return inv.Args()
}

func TestGrmLabelWithToken(t *testing.T) {
	r := newWrenchRun(t)

	out, err := r.exec("grm", "label", "--token", "tkn123", "--owner", "acme", "--repository", "wrench", "--debug")
	require.NoError(t, err)

	inv, _ := r.process.Last()
	require.Equal(t, "/tools/grm", inv.FilePath)
	require.Equal(t, []string{"label", "--token", "tkn123", "-o", "acme", "-r", "wrench"}, inv.Args())
	require.Contains(t, out, "[REDACTED]")
	require.NotContains(t, out, "tkn123")
	require.Contains(t, out, "Labels updated for acme/wrench")
}

func TestGrmLabelWithoutCredentials(t *testing.T) {
	r := newWrenchRun(t)

	out, err := r.exec("grm", "label", "-o", "acme", "-r", "wrench")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no GitHub credentials")
	require.Contains(t, out, "WRENCH_GITHUB_TOKEN")
	require.Empty(t, r.process.Invocations())
}

func TestGrmLabelMissingPasswordFailsValidation(t *testing.T) {
	r := newWrenchRun(t)

	_, err := r.exec("grm", "label", "-u", "bob", "-o", "acme", "-r", "wrench")
	require.ErrorIs(t, err, wrencherrors.ErrInvalidArgument)

	var argErr *wrencherrors.ArgumentError
	require.True(t, errors.As(err, &argErr))
	require.Equal(t, "password", argErr.Param)
	require.Empty(t, r.process.Invocations())
}

func TestGrmCloseWithTargetDirectory(t *testing.T) {
	r := newWrenchRun(t)

	_, err := r.exec("grm", "close", "-u", "bob", "-p", "pw", "-o", "acme", "-r", "wrench", "-m", "1.0.0", "-d", "out")
	require.NoError(t, err)
	require.Equal(t, []string{
		"close", "-u", "bob", "-p", "pw", "-o", "acme", "-r", "wrench", "-m", "1.0.0", "-d", filepath.Join(r.dir, "out"),
	}, r.lastArgs(t))
}

func TestGrmPublishUsesConfigFile(t *testing.T) {
	r := newWrenchRun(t)
	require.NoError(t, os.WriteFile(filepath.Join(r.dir, "wrench.yaml"), []byte(`
github:
  token: from-config
  owner: acme
  repository: wrench
tools:
  gitreleasemanager: bin/grm
`), 0o600))

	_, err := r.exec("grm", "publish", "--tag", "v1.0.0", "--args=--verbose")
	require.NoError(t, err)

	inv, _ := r.process.Last()
	require.Equal(t, filepath.Join(r.dir, "bin", "grm"), inv.FilePath)
	require.Equal(t, []string{"publish", "--token", "from-config", "-o", "acme", "-r", "wrench", "-t", "v1.0.0", "--verbose"}, inv.Args())
}

func TestGrmDefaultsRepositoryFromOrigin(t *testing.T) {
	r := newWrenchRun(t)
	repo, err := gogit.PlainInit(r.dir, false)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{Name: "origin", URLs: []string{"https://github.com/acme/wrench.git"}})
	require.NoError(t, err)

	_, err = r.exec("grm", "label", "--token", "t")
	require.NoError(t, err)
	require.Equal(t, []string{"label", "--token", "t", "-o", "acme", "-r", "wrench"}, r.lastArgs(t))
}

func TestGrmToolFailure(t *testing.T) {
	r := newWrenchRun(t)
	r.process.Err = wrencherrors.NewToolCommandError("grm", "label --token [REDACTED]", 2, "", "", errors.New("exit status 2"))

	_, err := r.exec("grm", "label", "--token", "t", "-o", "acme", "-r", "wrench")
	require.ErrorIs(t, err, wrencherrors.ErrToolFailed)
}

func TestDotnetBuildServerShutdown(t *testing.T) {
	r := newWrenchRun(t)

	_, err := r.exec("dotnet", "build-server", "shutdown", "--razor", "--diagnostics")
	require.NoError(t, err)

	inv, _ := r.process.Last()
	require.Equal(t, "/tools/dotnet", inv.FilePath)
	require.Equal(t, []string{"--diagnostics", "build-server", "shutdown", "--razor"}, inv.Args())
}

func TestDotnetBuildServerShutdownExplicitFalse(t *testing.T) {
	r := newWrenchRun(t)

	_, err := r.exec("dotnet", "build-server", "shutdown", "--msbuild=false", "--vbcscompiler")
	require.NoError(t, err)
	require.Equal(t, []string{"build-server", "shutdown", "--vbcscompiler"}, r.lastArgs(t))
}

func TestCIInfoBitrise(t *testing.T) {
	r := newWrenchRun(t)
	r.env["BITRISE_BUILD_URL"] = "https://app.bitrise.io/build/1"
	r.env["BITRISE_GIT_BRANCH"] = "main"
	r.env["BITRISE_CERTIFICATE_PASSPHRASE"] = "s3cret"

	out, err := r.exec("ci", "info")
	require.NoError(t, err)
	require.Contains(t, out, "Running on Bitrise")
	require.Contains(t, out, "BITRISE_GIT_BRANCH")
	require.Contains(t, out, "main")
	require.Contains(t, out, "[REDACTED]")
	require.NotContains(t, out, "s3cret")
}

func TestCIInfoNoProvider(t *testing.T) {
	r := newWrenchRun(t)

	out, err := r.exec("ci", "info")
	require.NoError(t, err)
	require.Contains(t, out, "No CI provider detected.")
}

func TestBitriseSetEnv(t *testing.T) {
	r := newWrenchRun(t)

	_, err := r.exec("ci", "bitrise", "set-env", "VERSION", "1.2.3")
	require.NoError(t, err)

	inv, _ := r.process.Last()
	require.Equal(t, "/tools/envman", inv.FilePath)
	require.Equal(t, []string{"add", "--key", "VERSION", "--value", "1.2.3"}, inv.Args())
}

func TestBitriseSetSecretEnvFromStdin(t *testing.T) {
	r := newWrenchRun(t)
	r.stdin = strings.NewReader("hunter2\n")

	out, err := r.exec("ci", "bitrise", "set-env", "API_KEY", "--secret", "--debug")
	require.NoError(t, err)

	inv, _ := r.process.Last()
	require.Equal(t, []string{"add", "--key", "API_KEY", "--value", "hunter2"}, inv.Args())
	require.NotContains(t, out, "hunter2")
}

func TestConfigShowMasksSecrets(t *testing.T) {
	r := newWrenchRun(t)
	t.Setenv("WRENCH_GITHUB_TOKEN", "tkn-from-env")
	t.Setenv("WRENCH_GITHUB_OWNER", "acme")

	out, err := r.exec("config", "show")
	require.NoError(t, err)
	require.Contains(t, out, "acme")
	require.Contains(t, out, "[REDACTED]")
	require.NotContains(t, out, "tkn-from-env")
}
