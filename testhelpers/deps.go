package testhelpers

import (
	"bytes"
	"path/filepath"
	"runtime"
	"testing"

	"wrench.dev/wrench/internal/environment"
	"wrench.dev/wrench/internal/tool"
	"wrench.dev/wrench/internal/tui"
)

// ToolHarness wires a tool.Dependencies with fakes so tests can inspect
// exactly what would have been executed
type ToolHarness struct {
	Deps    tool.Dependencies
	Process *FakeProcessRunner
	Log     *bytes.Buffer
	// WorkingDir is the absolute directory relative paths resolve against
	WorkingDir string
}

// NewToolHarness creates a harness whose locator knows the given executables.
// Each executable resolves to <WorkingDir>/bin/<name>.
func NewToolHarness(t *testing.T, env environment.Map, executables ...string) *ToolHarness {
	t.Helper()

	wd := "/work/repo"
	if runtime.GOOS == "windows" {
		wd = `C:\work\repo`
	}

	locator := FakeLocator{}
	for _, name := range executables {
		locator[name] = filepath.Join(wd, "bin", name)
	}

	if env == nil {
		env = environment.Map{}
	}

	log := &bytes.Buffer{}
	fake := NewFakeProcessRunner()
	return &ToolHarness{
		Deps: tool.Dependencies{
			Environment: environment.New(env, wd),
			Process:     fake,
			Locator:     locator,
			Splog:       tui.NewSplogWithWriter(log, true),
		},
		Process:    fake,
		Log:        log,
		WorkingDir: wd,
	}
}

// Abs joins elem onto the harness working directory
func (h *ToolHarness) Abs(elem ...string) string {
	return filepath.Join(append([]string{h.WorkingDir}, elem...)...)
}
