package npm

import (
	"context"
	"strings"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerRunner decorates another Runner with a terminal spinner while the
// package manager works. Only wired up for the real console; tests use the
// undecorated runner.
type SpinnerRunner struct {
	next Runner
}

// NewSpinnerRunner creates a SpinnerRunner wrapping next
func NewSpinnerRunner(next Runner) *SpinnerRunner {
	return &SpinnerRunner{next: next}
}

func (r *SpinnerRunner) Run(ctx context.Context, dir string, args ...string) error {
	var runErr error

	action := func() {
		runErr = r.next.Run(ctx, dir, args...)
	}

	if err := spinner.New().
		Title("npm " + strings.Join(args, " ")).
		Context(ctx).
		Action(action).
		Run(); err != nil {
		return err
	}

	return runErr
}
