package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	m "catchup.dev/pkg/catchup/internal/model"
)

// DefaultBuildTimeout bounds each CMake invocation.
const DefaultBuildTimeout = 120 * time.Second

// BuildRunner abstracts the configure+build step that produces the test
// binary.
type BuildRunner interface {
	// Build configures and builds the project out-of-source into
	// <project>/build and returns the path of the produced test
	// executable. On failure the RunResult carries the combined build log.
	Build(ctx context.Context, project m.Project) (m.Path, m.RunResult)
}

// CMakeBuildRunner builds projects with CMake.
type CMakeBuildRunner struct {
	fs      ProjectFS
	timeout time.Duration
}

// NewCMakeBuildRunner constructs a CMakeBuildRunner. A non-positive timeout
// falls back to DefaultBuildTimeout.
func NewCMakeBuildRunner(fs ProjectFS, timeout time.Duration) *CMakeBuildRunner {
	if timeout <= 0 {
		timeout = DefaultBuildTimeout
	}

	return &CMakeBuildRunner{fs: fs, timeout: timeout}
}

// Build runs cmake configure then build, each under its own wall-clock
// bound, and locates the resulting executable.
func (b *CMakeBuildRunner) Build(ctx context.Context, project m.Project) (m.Path, m.RunResult) {
	dir := string(project.Dir)

	if !b.fs.HasCMakeLists(project.Dir) {
		return "", m.RunResult{Err: fmt.Errorf("%w in %s", ErrNoCMakeLists, dir)}
	}

	buildDir := filepath.Join(dir, "build")

	configure := runCommand(ctx, b.timeout, dir, "cmake", "-S", dir, "-B", buildDir)
	if !configure.Succeeded {
		return "", configure
	}

	build := runCommand(ctx, b.timeout, dir, "cmake", "--build", buildDir)

	// Keep the configure output in front so the log reads as one build.
	build.Stdout = configure.Stdout + build.Stdout
	build.Stderr = configure.Stderr + build.Stderr

	if !build.Succeeded {
		return "", build
	}

	executable, err := b.fs.ResolveExecutable(project, "")
	if err != nil {
		build.Succeeded = false
		build.Err = err

		return "", build
	}

	return executable, build
}
