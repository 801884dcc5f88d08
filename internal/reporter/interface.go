package reporter

// Reporter provides an abstraction over step-status output for
// testability. Every pipeline stage announces itself through Start and
// finishes with exactly one of Success or Failure.
type Reporter interface {
	Start(step string)
	Success(step string)
	Failure(step string, err error)
}
