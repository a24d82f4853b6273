package git

import (
	"fmt"
	"strings"
)

// RemoteInfo contains parsed information from a git remote URL
type RemoteInfo struct {
	Hostname   string
	Owner      string
	Repository string
}

// ParseRemoteURL parses a git remote URL and extracts hostname, owner and repository.
// Examples:
//   - https://github.com/owner/repo.git
//   - git@github.com:owner/repo.git
//   - ssh://git@github.company.com/owner/repo.git
func ParseRemoteURL(remoteURL string) (*RemoteInfo, error) {
	remoteURL = strings.TrimSpace(remoteURL)
	remoteURL = strings.TrimSuffix(remoteURL, "/")
	remoteURL = strings.TrimSuffix(remoteURL, ".git")

	var hostname, path string

	switch {
	case strings.Contains(remoteURL, "://"):
		// scheme://[user@]hostname[:port]/owner/repo
		rest := remoteURL[strings.Index(remoteURL, "://")+3:]
		if at := strings.Index(rest, "@"); at >= 0 {
			rest = rest[at+1:]
		}
		parts := strings.SplitN(rest, "/", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid remote URL %q: missing path", remoteURL)
		}
		hostname = parts[0]
		if colon := strings.Index(hostname, ":"); colon >= 0 {
			hostname = hostname[:colon]
		}
		path = parts[1]
	case strings.Contains(remoteURL, "@"):
		// scp-like: git@hostname:owner/repo
		hostAndPath := strings.SplitN(remoteURL, "@", 2)[1]
		parts := strings.SplitN(hostAndPath, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid SSH remote URL %q", remoteURL)
		}
		hostname = parts[0]
		path = parts[1]
	default:
		return nil, fmt.Errorf("unsupported remote URL %q", remoteURL)
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 {
		return nil, fmt.Errorf("invalid remote URL %q: path must be owner/repo", remoteURL)
	}
	owner := segments[len(segments)-2]
	repo := segments[len(segments)-1]

	if hostname == "" || owner == "" || repo == "" {
		return nil, fmt.Errorf("failed to parse hostname, owner, or repo from remote URL %q", remoteURL)
	}

	return &RemoteInfo{Hostname: hostname, Owner: owner, Repository: repo}, nil
}
