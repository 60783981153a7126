package config

import "fmt"

// ValidationError reports a rejected field in a candidate Settings
// record. It is recovered by the preferences dialog and shown inline,
// never propagated further.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Field, e.Reason)
}
