package entities

import "fmt"

// ConfigError reports a usage table that lacks the mandatory Component or
// Per_Case columns. It is a precondition violation: the caller gets it before
// any row is computed, with no partial results.
type ConfigError struct {
	Missing []string
	Found   []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("usage table must have headers %v, found %v", e.Missing, e.Found)
}
