// Package adapter contains the subprocess and filesystem adapters for the
// catchup CLI. Adapters hide os/exec and direct disk access so the domain
// logic can be tested without launching processes or touching the disk.
package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	m "catchup.dev/pkg/catchup/internal/model"
)

// runCommand executes one subprocess with a wall-clock bound and folds every
// failure mode into the returned RunResult: nonzero exit sets ExitCode,
// exceeding the bound sets TimedOut, and a launch failure sets Err. Nothing
// escapes as a plain error. A deadline already present on ctx takes
// precedence over timeout.
func runCommand(ctx context.Context, timeout time.Duration, workDir string, name string, args ...string) m.RunResult {
	if _, ok := ctx.Deadline(); !ok && timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := m.RunResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.TimedOut = true
		result.Err = fmt.Errorf("%s timed out after %s", name, timeout)

		return result
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.Err = fmt.Errorf("starting %s: %w", name, err)
		}

		return result
	}

	result.Succeeded = true

	return result
}
