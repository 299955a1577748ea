package bonsai

import "fmt"

// ConfigurationError reports an unknown action name or enum value reaching
// the core. These indicate mis-wired callers or hand-edited snapshots and
// are surfaced rather than silently ignored.
type ConfigurationError struct {
	Field string
	Value string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Field, e.Value)
}
