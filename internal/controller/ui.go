// Package controller renders the human-facing progress trail for a pipeline
// run. The printed lines plus the process exit code are the tool's only
// consumer-facing artifacts.
package controller

import (
	"os"

	"golang.org/x/term"

	m "catchup.dev/pkg/catchup/internal/model"
)

// UI is the sink for all progress and summary output. The domain layer talks
// to it instead of printing, so tests can capture or ignore the trail.
type UI interface {
	Header(title string)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Successf(format string, args ...any)
	Failuref(format string, args ...any)

	// AmbiguousTestFiles warns that several files matched the test-file
	// suffix and names the ones that were ignored.
	AmbiguousTestFiles(chosen m.Path, ignored []m.Path)

	// NoTagsFallback announces that no task tags were found and the full
	// suite runs once instead.
	NoTagsFallback()

	ProgressiveStarted(tags []m.TaskTag)
	TagStarted(index, total int, tag m.TaskTag)
	TagPassed(tag m.TaskTag, result m.RunResult)

	// TagFailed prints the failing run's full output and the
	// passed/failed/not-attempted summary.
	TagFailed(tag m.TaskTag, result m.RunResult, report m.ProgressiveReport)

	FinalVerifyStarted()

	// ReportVerdict prints the terminal verdict for a report that reached
	// a non-failing tag state: the no-tags fallback, a subset pass, or
	// the final verification outcome.
	ReportVerdict(report m.ProgressiveReport)

	// Confirm asks a yes/no question; the default answer is no.
	Confirm(prompt string) bool
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
