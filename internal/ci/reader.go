// Package ci detects continuous-integration providers and exposes typed,
// always-live views over the environment variables they set.
package ci

import (
	"strconv"
	"strings"

	"wrench.dev/wrench/internal/environment"
)

// EnvReader reads environment variables as strings, integers and booleans.
// Every accessor is total: missing or malformed values degrade to the zero value.
// Nothing is cached, so each call observes the environment as it is now.
type EnvReader struct {
	env environment.Accessor
}

// NewEnvReader creates an EnvReader over the given accessor
func NewEnvReader(env environment.Accessor) EnvReader {
	if env == nil {
		env = environment.OS{}
	}
	return EnvReader{env: env}
}

// String returns the raw value of variable, or "" if it is unset
func (r EnvReader) String(variable string) string {
	v, ok := r.env.LookupEnv(variable)
	if !ok {
		return ""
	}
	return v
}

// Int returns variable parsed as a base-10 integer, or 0 if it is unset, blank or not a number
func (r EnvReader) Int(variable string) int {
	v := r.String(variable)
	if strings.TrimSpace(v) == "" {
		return 0
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0
	}
	return int(n)
}

// Bool reports whether variable equals "true", ignoring case and surrounding whitespace.
// "1", "yes" and everything else are false.
func (r EnvReader) Bool(variable string) bool {
	return strings.EqualFold(strings.TrimSpace(r.String(variable)), "true")
}
