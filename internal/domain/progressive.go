package domain

import (
	"context"
	"log/slog"

	"catchup.dev/pkg/catchup/internal/adapter"
	"catchup.dev/pkg/catchup/internal/controller"
	m "catchup.dev/pkg/catchup/internal/model"
)

// DefaultTestFileSuffix is the naming convention for the test definition
// file inside an exercise directory.
const DefaultTestFileSuffix = "_test.cpp"

// ProgressiveArgs configures one progressive test pass.
type ProgressiveArgs struct {
	Project    m.Project
	Executable m.Path

	// Only restricts the run to an explicit task subset (canonical
	// "task_<N>" names). A non-empty subset also suppresses the final
	// full-suite verification.
	Only []string

	// TestSuffix overrides DefaultTestFileSuffix when non-empty.
	TestSuffix string
}

// Progressive runs an exercise's test binary one task tag at a time, in
// ascending numeric order, stopping at the first failure. When every tag
// passes and no subset was requested, one unfiltered run verifies the tags
// also pass combined.
type Progressive interface {
	// Run returns the report of the pass. The error is reserved for
	// configuration problems (missing executable or test file, unknown
	// task subset); test failures are reported through the report only.
	Run(ctx context.Context, args ProgressiveArgs) (m.ProgressiveReport, error)
}

type progressive struct {
	fs     adapter.ProjectFS
	runner adapter.TestRunner
	ui     controller.UI
}

// NewProgressive constructs the progressive controller from its adapters.
func NewProgressive(fs adapter.ProjectFS, runner adapter.TestRunner, ui controller.UI) Progressive {
	return &progressive{fs: fs, runner: runner, ui: ui}
}

func (p *progressive) Run(ctx context.Context, args ProgressiveArgs) (m.ProgressiveReport, error) {
	var report m.ProgressiveReport

	tags, err := p.extractTags(args)
	if err != nil {
		return report, err
	}

	if len(tags) == 0 {
		return p.runFallback(ctx, args), nil
	}

	scheduled, err := p.schedule(tags, args.Only)
	if err != nil {
		return report, err
	}

	report.Tags = scheduled
	report.Filtered = len(args.Only) > 0

	p.ui.ProgressiveStarted(scheduled)

	for i, tag := range scheduled {
		p.ui.TagStarted(i+1, len(scheduled), tag)

		result := p.runner.RunTag(ctx, args.Executable, tag)
		result.Counts = ParseCounts(result.Output())

		if !result.Succeeded {
			slog.Debug("tag failed", "tag", tag.String(), "exit_code", result.ExitCode, "timed_out", result.TimedOut)

			report.Failed = &scheduled[i]
			report.FailedRun = &result
			p.ui.TagFailed(tag, result, report)

			return report, nil
		}

		report.Passed = append(report.Passed, tag)
		p.ui.TagPassed(tag, result)
	}

	if report.Filtered {
		p.ui.ReportVerdict(report)
		return report, nil
	}

	// Passing each tag in isolation does not guarantee the combined
	// suite passes; shared state or tag-overlap bugs only surface here.
	p.ui.FinalVerifyStarted()

	final := p.runner.RunAll(ctx, args.Executable)
	final.Counts = ParseCounts(final.Output())
	report.FinalRun = &final

	p.ui.ReportVerdict(report)

	return report, nil
}

// extractTags locates the test file and extracts its tag schedule. A
// missing test file is a configuration error raised before any subprocess
// attempt.
func (p *progressive) extractTags(args ProgressiveArgs) ([]m.TaskTag, error) {
	suffix := args.TestSuffix
	if suffix == "" {
		suffix = DefaultTestFileSuffix
	}

	testFile, ignored, err := p.fs.FindTestFile(args.Project.Dir, suffix)
	if err != nil {
		return nil, err
	}

	if len(ignored) > 0 {
		p.ui.AmbiguousTestFiles(testFile, ignored)
	}

	text, err := p.fs.ReadFileText(testFile)
	if err != nil {
		return nil, err
	}

	return ExtractTags(text), nil
}

// runFallback performs the single unfiltered run used when the test file
// carries no task tags. The report holds that run as its only result.
func (p *progressive) runFallback(ctx context.Context, args ProgressiveArgs) m.ProgressiveReport {
	p.ui.NoTagsFallback()

	result := p.runner.RunAll(ctx, args.Executable)
	result.Counts = ParseCounts(result.Output())

	report := m.ProgressiveReport{FinalRun: &result}
	p.ui.ReportVerdict(report)

	return report
}

// schedule intersects the extracted tags with the requested subset,
// preserving extracted order. An empty intersection is a configuration
// error, not a test failure.
func (p *progressive) schedule(tags []m.TaskTag, only []string) ([]m.TaskTag, error) {
	if len(only) == 0 {
		return tags, nil
	}

	requested := make(map[string]struct{}, len(only))
	for _, name := range only {
		requested[name] = struct{}{}
	}

	var scheduled []m.TaskTag

	for _, tag := range tags {
		if _, ok := requested[tag.String()]; ok {
			scheduled = append(scheduled, tag)
		}
	}

	if len(scheduled) == 0 {
		return nil, &UnknownTasksError{Requested: only, Available: tags}
	}

	return scheduled, nil
}
