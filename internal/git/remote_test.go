package git_test

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/require"

	"wrench.dev/wrench/internal/git"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		url      string
		hostname string
		owner    string
		repo     string
	}{
		{url: "https://github.com/acme/wrench.git", hostname: "github.com", owner: "acme", repo: "wrench"},
		{url: "https://github.com/acme/wrench", hostname: "github.com", owner: "acme", repo: "wrench"},
		{url: "http://github.company.com/acme/wrench/", hostname: "github.company.com", owner: "acme", repo: "wrench"},
		{url: "git@github.com:acme/wrench.git", hostname: "github.com", owner: "acme", repo: "wrench"},
		{url: "ssh://git@github.company.com:2222/acme/wrench.git", hostname: "github.company.com", owner: "acme", repo: "wrench"},
		{url: "https://token@github.com/acme/wrench.git", hostname: "github.com", owner: "acme", repo: "wrench"},
	}

	for _, tc := range tests {
		t.Run(tc.url, func(t *testing.T) {
			info, err := git.ParseRemoteURL(tc.url)
			require.NoError(t, err)
			require.Equal(t, tc.hostname, info.Hostname)
			require.Equal(t, tc.owner, info.Owner)
			require.Equal(t, tc.repo, info.Repository)
		})
	}
}

func TestParseRemoteURLInvalid(t *testing.T) {
	for _, url := range []string{"", "github.com/acme", "https://github.com/acme", "git@github.com", "/srv/git/wrench"} {
		t.Run(url, func(t *testing.T) {
			_, err := git.ParseRemoteURL(url)
			require.Error(t, err)
		})
	}
}

func TestDetectRepository(t *testing.T) {
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:acme/wrench.git"},
	})
	require.NoError(t, err)

	sub := filepath.Join(dir, "src", "app")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	info, err := git.DetectRepository(sub)
	require.NoError(t, err)
	require.Equal(t, "acme", info.Owner)
	require.Equal(t, "wrench", info.Repository)

	root, err := git.GetRepoRoot(sub)
	require.NoError(t, err)
	require.Equal(t, dir, root)
}

func TestDetectRepositoryWithoutOrigin(t *testing.T) {
	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = git.DetectRepository(dir)
	require.ErrorIs(t, err, git.ErrNoRemote)
}

func TestDetectRepositoryOutsideRepository(t *testing.T) {
	_, err := git.DetectRepository(t.TempDir())
	require.Error(t, err)
}
