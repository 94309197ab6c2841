package model

// Counts holds the test case and assertion totals scraped from a run's
// output. Known is false when the output carried no recognizable totals;
// that is not an error, the counts are simply displayed as unknown.
type Counts struct {
	TestCases  int
	Assertions int
	Known      bool
}

// RunResult is the outcome of a single subprocess invocation. Failure modes
// are distinguished by structured fields rather than by error type: a test
// failure sets ExitCode, a wall-clock overrun sets TimedOut, and a launch
// failure (binary missing, not executable) sets Err.
type RunResult struct {
	Succeeded bool
	ExitCode  int
	TimedOut  bool
	Stdout    string
	Stderr    string
	Counts    Counts
	Err       error // launch failure or timeout detail, never a test failure
}

// Output returns the combined stdout and stderr text, verbatim, in that
// order. This is the raw diagnostic trail shown to the user on failure.
func (r RunResult) Output() string {
	return r.Stdout + r.Stderr
}
