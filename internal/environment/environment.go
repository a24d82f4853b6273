// Package environment provides access to process environment variables and the
// working directory that relative paths are resolved against.
package environment

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Accessor looks up environment variables by name
type Accessor interface {
	LookupEnv(name string) (string, bool)
}

// OS reads variables from the current process environment
type OS struct{}

// LookupEnv implements Accessor
func (OS) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Map is an in-memory Accessor, used for dotenv overlays and tests
type Map map[string]string

// LookupEnv implements Accessor
func (m Map) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Layered consults each accessor in order and returns the first hit
type Layered []Accessor

// LookupEnv implements Accessor
func (l Layered) LookupEnv(name string) (string, bool) {
	for _, a := range l {
		if a == nil {
			continue
		}
		if v, ok := a.LookupEnv(name); ok {
			return v, true
		}
	}
	return "", false
}

// Environment couples an Accessor with the working directory used for path resolution
type Environment struct {
	accessor   Accessor
	workingDir string
}

// New creates an Environment. An empty workingDir falls back to os.Getwd.
func New(accessor Accessor, workingDir string) *Environment {
	if accessor == nil {
		accessor = OS{}
	}
	if workingDir == "" {
		if wd, err := os.Getwd(); err == nil {
			workingDir = wd
		}
	}
	return &Environment{accessor: accessor, workingDir: filepath.Clean(workingDir)}
}

// NewFromOS creates an Environment over the process environment and current directory
func NewFromOS() *Environment {
	return New(OS{}, "")
}

// LookupEnv implements Accessor
func (e *Environment) LookupEnv(name string) (string, bool) {
	return e.accessor.LookupEnv(name)
}

// Accessor returns the underlying variable accessor
func (e *Environment) Accessor() Accessor {
	return e.accessor
}

// WorkingDirectory returns the directory relative paths are resolved against
func (e *Environment) WorkingDirectory() string {
	return e.workingDir
}

// MakeAbsolute resolves path against the working directory.
// Absolute paths are only cleaned; a leading "~/" expands to the home directory.
func (e *Environment) MakeAbsolute(path string) string {
	if path == "" {
		return e.workingDir
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, ok := e.accessor.LookupEnv("HOME"); ok && home != "" {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(e.workingDir, path)
}

// Pairs renders variables as sorted KEY=VALUE strings, the shape exec.Cmd.Env expects
func Pairs(vars map[string]string) []string {
	if len(vars) == 0 {
		return nil
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+vars[k])
	}
	return pairs
}
