package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadValueFromPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	go func() {
		_, _ = w.Write([]byte("  s3cret value \n"))
		_ = w.Close()
	}()

	value, err := ReadValue(r)
	require.NoError(t, err)
	require.Equal(t, "  s3cret value ", value)
}

func TestReadValueEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	value, err := ReadValue(f)
	require.NoError(t, err)
	require.Equal(t, "", value)
}

func TestIsInteractiveHonoursEnv(t *testing.T) {
	t.Setenv(NonInteractiveEnv, "1")
	require.False(t, IsInteractive())
}

func TestIsTerminalNil(t *testing.T) {
	require.False(t, IsTerminal(nil))
}
