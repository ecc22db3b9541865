// internal/model/errors.go
package model

import "fmt"

// DefinitionError reports a malformed `@define` annotation. It aborts
// the build.
type DefinitionError struct {
	Name   string // the key the annotation was attached to
	Reason string
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	return fmt.Sprintf("object definition for %q: %s", e.Name, e.Reason)
}

// BuildError reports a semantic error found while building the model:
// an `@define extends` target that is not an abstract define, an empty
// list literal, an unrepresentable number. It aborts the build.
type BuildError struct {
	Path   string // dotted path of the offending key, "" at the root
	Reason string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}
