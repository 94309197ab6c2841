package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catchup.dev/pkg/catchup/internal/adapter"
	m "catchup.dev/pkg/catchup/internal/model"
)

// fakeFS satisfies adapter.ProjectFS from canned answers so the domain can
// be exercised without touching the disk.
type fakeFS struct {
	project    m.Project
	resolveErr error

	testFile m.Path
	ignored  []m.Path
	findErr  error
	testText string

	executable m.Path
	execErr    error

	config    *m.ExerciseConfig
	configErr error

	hasCMake bool
}

func (f *fakeFS) ResolveProject(string) (m.Project, error) {
	return f.project, f.resolveErr
}

func (f *fakeFS) FindTestFile(m.Path, string) (m.Path, []m.Path, error) {
	return f.testFile, f.ignored, f.findErr
}

func (f *fakeFS) ReadFileText(m.Path) (string, error) {
	return f.testText, nil
}

func (f *fakeFS) ResolveExecutable(m.Project, string) (m.Path, error) {
	return f.executable, f.execErr
}

func (f *fakeFS) ReadExerciseConfig(m.Path) (*m.ExerciseConfig, error) {
	return f.config, f.configErr
}

func (f *fakeFS) HasCMakeLists(m.Path) bool {
	return f.hasCMake
}

// fakeRunner records invocations and answers from canned per-tag results.
type fakeRunner struct {
	tagResults map[string]m.RunResult
	allResult  m.RunResult
	tagCalls   []string
	allCalls   int
}

func passingResult() m.RunResult {
	return m.RunResult{Succeeded: true, Stdout: "All tests passed (2 assertions in 1 test case)\n"}
}

func (f *fakeRunner) RunTag(_ context.Context, _ m.Path, tag m.TaskTag) m.RunResult {
	f.tagCalls = append(f.tagCalls, tag.String())

	if result, ok := f.tagResults[tag.String()]; ok {
		return result
	}

	return passingResult()
}

func (f *fakeRunner) RunAll(context.Context, m.Path) m.RunResult {
	f.allCalls++
	return f.allResult
}

// recordingUI collects the trail as short event strings and answers Confirm
// from a preset.
type recordingUI struct {
	events  []string
	confirm bool
}

func (r *recordingUI) record(event string) {
	r.events = append(r.events, event)
}

func (r *recordingUI) Header(title string)                 { r.record("header " + title) }
func (r *recordingUI) Infof(format string, args ...any)    { r.record("info") }
func (r *recordingUI) Warnf(format string, args ...any)    { r.record("warn " + fmt.Sprintf(format, args...)) }
func (r *recordingUI) Successf(format string, args ...any) { r.record("success") }
func (r *recordingUI) Failuref(format string, args ...any) { r.record("failure") }
func (r *recordingUI) NoTagsFallback()                     { r.record("no_tags_fallback") }
func (r *recordingUI) FinalVerifyStarted()                 { r.record("final_verify") }
func (r *recordingUI) ReportVerdict(m.ProgressiveReport)   { r.record("verdict") }
func (r *recordingUI) Confirm(string) bool                 { r.record("confirm"); return r.confirm }

func (r *recordingUI) ProgressiveStarted(tags []m.TaskTag) {
	r.record(fmt.Sprintf("started %d", len(tags)))
}

func (r *recordingUI) AmbiguousTestFiles(chosen m.Path, ignored []m.Path) {
	r.record(fmt.Sprintf("ambiguous %s %d", chosen, len(ignored)))
}

func (r *recordingUI) TagStarted(index, total int, tag m.TaskTag) {
	r.record("tag_started " + tag.String())
}

func (r *recordingUI) TagPassed(tag m.TaskTag, _ m.RunResult) {
	r.record("tag_passed " + tag.String())
}

func (r *recordingUI) TagFailed(tag m.TaskTag, _ m.RunResult, _ m.ProgressiveReport) {
	r.record("tag_failed " + tag.String())
}

const threeTaskText = "[task_1] [task_2] [task_3]"

func newProgressiveFixture(testText string) (*fakeFS, *fakeRunner, *recordingUI, Progressive) {
	fs := &fakeFS{
		project:  m.Project{Dir: "/ex/lasagna", Name: "lasagna"},
		testFile: "/ex/lasagna/lasagna_test.cpp",
		testText: testText,
	}
	runner := &fakeRunner{allResult: passingResult()}
	ui := &recordingUI{}

	return fs, runner, ui, NewProgressive(fs, runner, ui)
}

func progressiveArgs(fs *fakeFS, only ...string) ProgressiveArgs {
	return ProgressiveArgs{
		Project:    fs.project,
		Executable: "/ex/lasagna/build/lasagna",
		Only:       only,
	}
}

func TestProgressive_NoTagsRunsFullSuiteOnce(t *testing.T) {
	fs, runner, ui, prog := newProgressiveFixture("TEST_CASE(\"untagged\")")

	report, err := prog.Run(context.Background(), progressiveArgs(fs))
	require.NoError(t, err)

	assert.Empty(t, runner.tagCalls)
	assert.Equal(t, 1, runner.allCalls)
	require.NotNil(t, report.FinalRun)
	assert.True(t, report.Succeeded())
	assert.Contains(t, ui.events, "no_tags_fallback")
}

func TestProgressive_NoTagsFallbackFailure(t *testing.T) {
	fs, runner, _, prog := newProgressiveFixture("no markers here")
	runner.allResult = m.RunResult{ExitCode: 1, Stdout: "boom\n"}

	report, err := prog.Run(context.Background(), progressiveArgs(fs))
	require.NoError(t, err)

	assert.False(t, report.Succeeded())
}

func TestProgressive_StopsAtFirstFailure(t *testing.T) {
	fs, runner, ui, prog := newProgressiveFixture(threeTaskText)
	runner.tagResults = map[string]m.RunResult{
		"task_2": {ExitCode: 1, Stdout: "REQUIRE failed\n"},
	}

	report, err := prog.Run(context.Background(), progressiveArgs(fs))
	require.NoError(t, err)

	assert.Equal(t, []string{"task_1", "task_2"}, runner.tagCalls)
	assert.Zero(t, runner.allCalls, "no final verification after a failed tag")

	require.Len(t, report.Passed, 1)
	assert.Equal(t, "task_1", report.Passed[0].String())
	require.NotNil(t, report.Failed)
	assert.Equal(t, "task_2", report.Failed.String())
	assert.Equal(t, "task_3", m.JoinTags(report.Remaining()))
	assert.False(t, report.Succeeded())
	assert.Contains(t, ui.events, "tag_failed task_2")
}

func TestProgressive_TimeoutTreatedAsFailure(t *testing.T) {
	fs, runner, _, prog := newProgressiveFixture(threeTaskText)
	runner.tagResults = map[string]m.RunResult{
		"task_1": {TimedOut: true, Err: errors.New("timed out after 30s")},
	}

	report, err := prog.Run(context.Background(), progressiveArgs(fs))
	require.NoError(t, err)

	assert.Equal(t, []string{"task_1"}, runner.tagCalls)
	assert.Zero(t, runner.allCalls)
	require.NotNil(t, report.Failed)
	assert.Equal(t, "task_1", report.Failed.String())
	assert.False(t, report.Succeeded())
}

func TestProgressive_AllPassRunsFinalVerification(t *testing.T) {
	fs, runner, ui, prog := newProgressiveFixture(threeTaskText)

	report, err := prog.Run(context.Background(), progressiveArgs(fs))
	require.NoError(t, err)

	assert.Equal(t, []string{"task_1", "task_2", "task_3"}, runner.tagCalls)
	assert.Equal(t, 1, runner.allCalls, "exactly one unfiltered verification run")
	assert.True(t, report.Succeeded())
	assert.Contains(t, ui.events, "final_verify")
}

func TestProgressive_FinalVerificationFailureFailsOverall(t *testing.T) {
	fs, runner, _, prog := newProgressiveFixture(threeTaskText)
	runner.allResult = m.RunResult{ExitCode: 1, Stdout: "cross-task interaction\n"}

	report, err := prog.Run(context.Background(), progressiveArgs(fs))
	require.NoError(t, err)

	assert.Len(t, report.Passed, 3, "every individual tag passed")
	assert.Nil(t, report.Failed)
	require.NotNil(t, report.FinalRun)
	assert.False(t, report.FinalRun.Succeeded)
	assert.False(t, report.Succeeded())
}

func TestProgressive_SubsetSkipsFinalVerification(t *testing.T) {
	fs, runner, _, prog := newProgressiveFixture(threeTaskText)

	report, err := prog.Run(context.Background(), progressiveArgs(fs, "task_1"))
	require.NoError(t, err)

	assert.Equal(t, []string{"task_1"}, runner.tagCalls)
	assert.Zero(t, runner.allCalls, "verification skipped under an explicit subset")
	assert.True(t, report.Filtered)
	assert.Nil(t, report.FinalRun)
	assert.True(t, report.Succeeded())
}

func TestProgressive_SubsetPreservesExtractedOrder(t *testing.T) {
	fs, runner, _, prog := newProgressiveFixture(threeTaskText)

	_, err := prog.Run(context.Background(), progressiveArgs(fs, "task_3", "task_1"))
	require.NoError(t, err)

	assert.Equal(t, []string{"task_1", "task_3"}, runner.tagCalls)
}

func TestProgressive_UnknownSubsetIsConfigurationError(t *testing.T) {
	fs, runner, _, prog := newProgressiveFixture(threeTaskText)

	_, err := prog.Run(context.Background(), progressiveArgs(fs, "task_9"))

	var unknownErr *UnknownTasksError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, []string{"task_9"}, unknownErr.Requested)
	assert.Len(t, unknownErr.Available, 3)

	assert.Empty(t, runner.tagCalls, "no test execution on a configuration error")
	assert.Zero(t, runner.allCalls)
}

func TestProgressive_MissingTestFileIsFatal(t *testing.T) {
	fs, runner, _, prog := newProgressiveFixture("")
	fs.findErr = fmt.Errorf("%w in /ex/lasagna", adapter.ErrNoTestFile)

	_, err := prog.Run(context.Background(), progressiveArgs(fs))
	require.ErrorIs(t, err, adapter.ErrNoTestFile)

	assert.Empty(t, runner.tagCalls)
	assert.Zero(t, runner.allCalls)
}

func TestProgressive_WarnsOnAmbiguousTestFiles(t *testing.T) {
	fs, _, ui, prog := newProgressiveFixture(threeTaskText)
	fs.ignored = []m.Path{"/ex/lasagna/zz_test.cpp"}

	_, err := prog.Run(context.Background(), progressiveArgs(fs))
	require.NoError(t, err)

	assert.Contains(t, ui.events, "ambiguous /ex/lasagna/lasagna_test.cpp 1")
}
