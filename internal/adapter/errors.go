package adapter

import "errors"

// Configuration errors surfaced by the filesystem adapter. These are fatal
// before any test execution is attempted, as opposed to execution failures
// which travel inside a RunResult.
var (
	ErrNoTestFile        = errors.New("no test file found")
	ErrExecutableMissing = errors.New("test executable not found")
	ErrNoExerciseConfig  = errors.New("no exercism config found")
	ErrNoCMakeLists      = errors.New("CMakeLists.txt not found")
)
