package job

import (
	"fmt"
	"strings"

	"github.com/Faultbox/xnbake/pkg/bake"
)

// ValidationError lists the fields that kept a bake from starting. Nothing
// was written or launched.
type ValidationError struct {
	Mode   bake.Mode
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s settings: %s", e.Mode, strings.Join(e.Fields, ", "))
}

// PersistenceError reports a failure to write the settings document.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("writing settings document %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// LaunchError reports a failure to start xNormal. The settings document
// was written and is left in place.
type LaunchError struct {
	Executable string
	Document   string
	Err        error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launching %q: %v", e.Executable, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }
