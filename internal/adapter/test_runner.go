package adapter

import (
	"context"
	"path/filepath"
	"time"

	m "catchup.dev/pkg/catchup/internal/model"
)

// DefaultTestTimeout bounds a single test binary invocation.
const DefaultTestTimeout = 30 * time.Second

// TestRunner abstracts invocation of a Catch2 test binary.
type TestRunner interface {
	// RunTag runs only the test cases labeled with tag, with successful
	// assertions included in the output.
	RunTag(ctx context.Context, executable m.Path, tag m.TaskTag) m.RunResult

	// RunAll runs the entire suite unfiltered.
	RunAll(ctx context.Context, executable m.Path) m.RunResult
}

// LocalTestRunner provides a concrete implementation using os/exec. The
// working directory of each run is the executable's containing directory.
type LocalTestRunner struct {
	timeout time.Duration
}

// NewLocalTestRunner constructs a LocalTestRunner. A non-positive timeout
// falls back to DefaultTestTimeout.
func NewLocalTestRunner(timeout time.Duration) *LocalTestRunner {
	if timeout <= 0 {
		timeout = DefaultTestTimeout
	}

	return &LocalTestRunner{timeout: timeout}
}

// RunTag invokes the executable restricted to one tag. Catch2 selects by a
// bracketed tag argument; -s reports successful assertions too.
func (r *LocalTestRunner) RunTag(ctx context.Context, executable m.Path, tag m.TaskTag) m.RunResult {
	return r.run(ctx, executable, tag.Bracketed(), "-s")
}

// RunAll invokes the executable with no arguments, running its whole suite.
func (r *LocalTestRunner) RunAll(ctx context.Context, executable m.Path) m.RunResult {
	return r.run(ctx, executable)
}

func (r *LocalTestRunner) run(ctx context.Context, executable m.Path, args ...string) m.RunResult {
	return runCommand(ctx, r.timeout, filepath.Dir(string(executable)), string(executable), args...)
}
