package process

import (
	"os"
	"os/exec"
	"path/filepath"
)

// Locator resolves an executable name to a path on disk
type Locator interface {
	Resolve(name string) (string, bool)
}

// PathLocator searches extra directories first, then PATH
type PathLocator struct {
	SearchPaths []string
}

// NewPathLocator creates a PathLocator that checks searchPaths before PATH
func NewPathLocator(searchPaths ...string) *PathLocator {
	return &PathLocator{SearchPaths: searchPaths}
}

// Resolve implements Locator
func (l *PathLocator) Resolve(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, dir := range l.SearchPaths {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if isExecutableFile(candidate) {
			abs, err := filepath.Abs(candidate)
			if err != nil {
				return candidate, true
			}
			return abs, true
		}
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if filepath.Ext(path) == ".exe" {
		return true
	}
	return info.Mode()&0o111 != 0
}
