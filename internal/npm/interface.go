package npm

import (
	"context"
)

// Runner provides an abstraction over package-manager invocations for
// testability.
//
// A call blocks until the underlying command completes; the migration
// never overlaps package-manager work with anything else.
type Runner interface {
	// Run executes the package manager with the given argument list,
	// using dir as the working directory.
	Run(ctx context.Context, dir string, args ...string) error
}
