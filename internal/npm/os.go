package npm

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// OSRunner implements Runner by shelling out to the npm binary
type OSRunner struct {
	binary string
}

// NewOSRunner creates a new OSRunner
func NewOSRunner() *OSRunner {
	return &OSRunner{
		binary: "npm",
	}
}

func (r *OSRunner) Run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return fmt.Errorf("%s %s failed: %w: %s", r.binary, strings.Join(args, " "), err, detail)
		}
		return fmt.Errorf("%s %s failed: %w", r.binary, strings.Join(args, " "), err)
	}

	return nil
}
