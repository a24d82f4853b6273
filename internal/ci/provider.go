package ci

// Provider is a CI system that can be detected from the environment
type Provider interface {
	// Name returns a human readable provider name
	Name() string
	// IsRunning reports whether the current process runs under this provider
	IsRunning() bool
}

// Field is one environment-backed value a provider reports
type Field struct {
	Section  string
	Variable string
	Value    string
	// Secret values must be masked before they are displayed
	Secret bool
}

// Reporter is implemented by providers that can list their values for display
type Reporter interface {
	Fields() []Field
}

// Detect returns the first provider that reports it is running. Nil entries are
// skipped; typed-nil providers must report false from IsRunning.
func Detect(providers ...Provider) (Provider, bool) {
	for _, p := range providers {
		if p != nil && p.IsRunning() {
			return p, true
		}
	}
	return nil, false
}
