package reporter

// Status describes a recorded step transition
type Status string

const (
	StatusStarted   Status = "started"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Event is a single recorded reporter transition
type Event struct {
	Step   string
	Status Status
	Err    error
}

// Recording implements Reporter for testing, capturing all transitions
type Recording struct {
	Events []Event
}

// NewRecording creates a new Recording reporter
func NewRecording() *Recording {
	return &Recording{}
}

func (r *Recording) Start(step string) {
	r.Events = append(r.Events, Event{Step: step, Status: StatusStarted})
}

func (r *Recording) Success(step string) {
	r.Events = append(r.Events, Event{Step: step, Status: StatusSucceeded})
}

func (r *Recording) Failure(step string, err error) {
	r.Events = append(r.Events, Event{Step: step, Status: StatusFailed, Err: err})
}

// Succeeded returns the names of all steps reported as successful
func (r *Recording) Succeeded() []string {
	return r.stepsWith(StatusSucceeded)
}

// Failed returns the names of all steps reported as failed
func (r *Recording) Failed() []string {
	return r.stepsWith(StatusFailed)
}

func (r *Recording) stepsWith(status Status) []string {
	var steps []string
	for _, e := range r.Events {
		if e.Status == status {
			steps = append(steps, e.Step)
		}
	}
	return steps
}
