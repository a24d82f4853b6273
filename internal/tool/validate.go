package tool

import (
	"reflect"
	"strings"

	wrencherrors "wrench.dev/wrench/internal/errors"
)

// RequireNonBlank fails with an ArgumentError naming param when value is empty or whitespace-only
func RequireNonBlank(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return wrencherrors.NewArgumentError(param)
	}
	return nil
}

// RequireSettings fails with an ArgumentError naming param when settings is nil,
// including a typed nil pointer stored in the interface
func RequireSettings(param string, settings any) error {
	if settings == nil {
		return wrencherrors.NewArgumentError(param)
	}
	v := reflect.ValueOf(settings)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return wrencherrors.NewArgumentError(param)
	}
	return nil
}

// Param pairs a parameter name with its value for bulk validation
type Param struct {
	Name  string
	Value string
}

// RequireAll checks params in order and returns the first failure
func RequireAll(params ...Param) error {
	for _, p := range params {
		if err := RequireNonBlank(p.Name, p.Value); err != nil {
			return err
		}
	}
	return nil
}
