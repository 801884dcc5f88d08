package reporter_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vitekit/cra2vite/internal/reporter"
)

func TestConsole_WritesStepTransitions(t *testing.T) {
	var out bytes.Buffer
	console := reporter.NewConsole(&out)

	console.Start("swap build dependencies")
	console.Success("swap build dependencies")
	console.Failure("restructure entry files", errors.New("index.html not found"))

	output := out.String()
	require.Contains(t, output, "swap build dependencies")
	require.Contains(t, output, "restructure entry files")
	require.Contains(t, output, "index.html not found")
}

func TestRecording_TracksOutcomes(t *testing.T) {
	rec := reporter.NewRecording()

	rec.Start("a")
	rec.Success("a")
	rec.Start("b")
	rec.Failure("b", errors.New("boom"))

	require.Equal(t, []string{"a"}, rec.Succeeded())
	require.Equal(t, []string{"b"}, rec.Failed())
	require.Len(t, rec.Events, 4)

	last := rec.Events[len(rec.Events)-1]
	require.Equal(t, reporter.StatusFailed, last.Status)
	require.EqualError(t, last.Err, "boom")
}
