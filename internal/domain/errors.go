package domain

import (
	"errors"
	"fmt"
	"strings"

	m "catchup.dev/pkg/catchup/internal/model"
)

// ErrChecksFailed is the terminal error for a test run that executed but did
// not pass. It is distinct from configuration errors, which abort before any
// test execution.
var ErrChecksFailed = errors.New("tests failed")

// ErrBuildFailed is the terminal error for a failed build step.
var ErrBuildFailed = errors.New("build failed")

// ErrSubmitFailed is the terminal error for a failed submission.
var ErrSubmitFailed = errors.New("submission failed")

// UnknownTasksError is the configuration error for a task subset that shares
// nothing with the tags extracted from the test file. It reports both sides
// so the user can see what was actually available.
type UnknownTasksError struct {
	Requested []string
	Available []m.TaskTag
}

func (e *UnknownTasksError) Error() string {
	return fmt.Sprintf("none of the requested tasks exist: requested %s, available %s",
		strings.Join(e.Requested, ", "), m.JoinTags(e.Available))
}
