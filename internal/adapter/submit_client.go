package adapter

import (
	"context"
	"time"

	m "catchup.dev/pkg/catchup/internal/model"
)

// DefaultSubmitTimeout bounds a submission attempt.
const DefaultSubmitTimeout = 30 * time.Second

// SubmitClient abstracts the third-party exercism CLI.
type SubmitClient interface {
	// Submit uploads the given solution files from the project directory.
	Submit(ctx context.Context, projectDir m.Path, files []string) m.RunResult
}

// ExercismClient submits solutions through the exercism binary on PATH.
type ExercismClient struct {
	binary  string
	timeout time.Duration
}

// NewExercismClient constructs an ExercismClient. A non-positive timeout
// falls back to DefaultSubmitTimeout.
func NewExercismClient(timeout time.Duration) *ExercismClient {
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}

	return &ExercismClient{binary: "exercism", timeout: timeout}
}

// Submit runs `exercism submit <files...>` in the project directory.
func (c *ExercismClient) Submit(ctx context.Context, projectDir m.Path, files []string) m.RunResult {
	args := append([]string{"submit"}, files...)

	return runCommand(ctx, c.timeout, string(projectDir), c.binary, args...)
}
