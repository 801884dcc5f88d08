package migrate

import (
	"context"

	"github.com/vitekit/cra2vite/internal/reporter"
)

// Stage is one step of the migration pipeline
type Stage struct {
	// Name is the human-readable step name shown by the reporter
	Name string

	// Fatal stops the pipeline when the stage fails. Non-fatal failures
	// are reported and execution continues with the next stage.
	Fatal bool

	Run func(ctx context.Context) error
}

// StepResult records the outcome of a single executed stage
type StepResult struct {
	Name string
	Err  error
}

// Result collects the outcomes of a pipeline run
type Result struct {
	Steps []StepResult

	// Aborted is true when a fatal stage failed and later stages never ran
	Aborted bool
}

// Failed returns the steps that ended in an error
func (r *Result) Failed() []StepResult {
	var failed []StepResult
	for _, step := range r.Steps {
		if step.Err != nil {
			failed = append(failed, step)
		}
	}
	return failed
}

// OK reports whether every executed stage succeeded
func (r *Result) OK() bool {
	return !r.Aborted && len(r.Failed()) == 0
}

// RunStages executes the stages strictly in order, reporting each one.
// Errors from non-fatal stages are swallowed here after reporting; there
// is no retry and no rollback.
func RunStages(ctx context.Context, stages []Stage, rep reporter.Reporter) *Result {
	result := &Result{}

	for _, stage := range stages {
		rep.Start(stage.Name)

		err := stage.Run(ctx)
		result.Steps = append(result.Steps, StepResult{Name: stage.Name, Err: err})

		if err != nil {
			rep.Failure(stage.Name, err)
			if stage.Fatal {
				result.Aborted = true
				break
			}
			continue
		}

		rep.Success(stage.Name)
	}

	return result
}
