package testhelpers

import (
	"context"
	"sync"

	"wrench.dev/wrench/internal/args"
	"wrench.dev/wrench/internal/process"
)

// Invocation records one call to FakeProcessRunner.Run
type Invocation struct {
	FilePath string
	Settings process.Settings
	Tokens   []args.Token
}

// Args returns the argv that would have been passed to the process
func (i Invocation) Args() []string {
	out := make([]string, len(i.Tokens))
	for n, t := range i.Tokens {
		out[n] = t.Value
	}
	return out
}

// Redacted returns the command line as it would be logged
func (i Invocation) Redacted() string {
	return args.New().AppendTokens(i.Tokens...).Redacted()
}

// FakeProcessRunner implements process.Runner by recording invocations
// and returning a scripted result or error
type FakeProcessRunner struct {
	mu          sync.Mutex
	invocations []Invocation

	Result *process.Result
	Err    error
}

// NewFakeProcessRunner creates a runner that succeeds with exit code 0
func NewFakeProcessRunner() *FakeProcessRunner {
	return &FakeProcessRunner{Result: &process.Result{}}
}

// Run implements process.Runner
func (f *FakeProcessRunner) Run(_ context.Context, filePath string, settings process.Settings) (*process.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var tokens []args.Token
	if settings.Arguments != nil {
		tokens = settings.Arguments.Tokens()
	}
	f.invocations = append(f.invocations, Invocation{FilePath: filePath, Settings: settings, Tokens: tokens})
	return f.Result, f.Err
}

// Invocations returns every recorded call
func (f *FakeProcessRunner) Invocations() []Invocation {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Invocation, len(f.invocations))
	copy(out, f.invocations)
	return out
}

// Last returns the most recent call, or the zero value and false if there was none
func (f *FakeProcessRunner) Last() (Invocation, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.invocations) == 0 {
		return Invocation{}, false
	}
	return f.invocations[len(f.invocations)-1], true
}

// FakeLocator implements process.Locator over a fixed name-to-path table
type FakeLocator map[string]string

// Resolve implements process.Locator
func (l FakeLocator) Resolve(name string) (string, bool) {
	p, ok := l[name]
	return p, ok
}
