package npm

import (
	"context"
	"strings"
	"sync"
)

// MockRunner implements Runner for testing, recording every invocation
type MockRunner struct {
	mu          sync.Mutex
	invocations []Invocation

	// errors maps an npm subcommand (first argument) to an injected error
	errors map[string]error
}

// Invocation captures a single recorded package-manager call
type Invocation struct {
	Dir  string
	Args []string
}

// NewMockRunner creates a new MockRunner
func NewMockRunner() *MockRunner {
	return &MockRunner{
		errors: make(map[string]error),
	}
}

// FailWith makes every invocation of the given subcommand return err
func (m *MockRunner) FailWith(subcommand string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[subcommand] = err
}

func (m *MockRunner) Run(ctx context.Context, dir string, args ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.invocations = append(m.invocations, Invocation{Dir: dir, Args: args})

	if len(args) > 0 {
		if err := m.errors[args[0]]; err != nil {
			return err
		}
	}

	return ctx.Err()
}

// Invocations returns all recorded calls
func (m *MockRunner) Invocations() []Invocation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Invocation{}, m.invocations...)
}

// Commands returns each recorded call as a single "npm ..." style string
func (m *MockRunner) Commands() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	commands := make([]string, len(m.invocations))
	for i, inv := range m.invocations {
		commands[i] = strings.Join(inv.Args, " ")
	}
	return commands
}
