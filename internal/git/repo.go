package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// DefaultRemote is the remote DetectRepository reads
const DefaultRemote = "origin"

// ErrNoRemote is returned when the repository has no usable origin remote
var ErrNoRemote = errors.New("no origin remote")

// DetectRepository opens the repository containing dir and parses its origin remote
func DetectRepository(dir string) (*RemoteInfo, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	remote, err := repo.Remote(DefaultRemote)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return nil, ErrNoRemote
		}
		return nil, fmt.Errorf("failed to read remote %s: %w", DefaultRemote, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return nil, ErrNoRemote
	}
	return ParseRemoteURL(urls[0])
}

// GetRepoRoot returns the root directory of the repository containing dir
func GetRepoRoot(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}
