package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"catchup.dev/pkg/catchup/internal/adapter"
	"catchup.dev/pkg/catchup/internal/controller"
	m "catchup.dev/pkg/catchup/internal/model"
)

// CheckArgs configures the progressive test command.
type CheckArgs struct {
	Project    string
	Executable string
	Only       []string
	TestSuffix string
}

// BuildArgs configures the build command.
type BuildArgs struct {
	Project string
}

// SubmitArgs configures the submission command.
type SubmitArgs struct {
	Project string
	Auto    bool
}

// RunArgs configures the full build, test, submit pipeline.
type RunArgs struct {
	Project    string
	AutoSubmit bool
	TestSuffix string
}

// Workflow sequences the build, progressive test and submission steps.
// Every method resolves the project from the raw user argument; errors are
// configuration or step failures suitable for direct display.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) error
	Build(ctx context.Context, args BuildArgs) (m.Path, error)
	Submit(ctx context.Context, args SubmitArgs) error
	Run(ctx context.Context, args RunArgs) error
}

type workflow struct {
	fs          adapter.ProjectFS
	builder     adapter.BuildRunner
	submitter   adapter.SubmitClient
	progressive Progressive
	ui          controller.UI
}

// NewWorkflow constructs a Workflow from its adapters and the progressive
// controller.
func NewWorkflow(
	fs adapter.ProjectFS,
	builder adapter.BuildRunner,
	submitter adapter.SubmitClient,
	progressive Progressive,
	ui controller.UI,
) Workflow {
	return &workflow{
		fs:          fs,
		builder:     builder,
		submitter:   submitter,
		progressive: progressive,
		ui:          ui,
	}
}

// Check runs the progressive tests against an already-built executable.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	project, err := w.fs.ResolveProject(args.Project)
	if err != nil {
		return err
	}

	executable, err := w.fs.ResolveExecutable(project, args.Executable)
	if err != nil {
		return err
	}

	return w.check(ctx, project, executable, args.Only, args.TestSuffix)
}

func (w *workflow) check(ctx context.Context, project m.Project, executable m.Path, only []string, suffix string) error {
	report, err := w.progressive.Run(ctx, ProgressiveArgs{
		Project:    project,
		Executable: executable,
		Only:       NormalizeTaskNames(only),
		TestSuffix: suffix,
	})
	if err != nil {
		slog.Error("progressive run aborted", "project", project.Name, "error", err)
		return err
	}

	if !report.Succeeded() {
		return ErrChecksFailed
	}

	return nil
}

// Build configures and builds the project and reports the executable path.
func (w *workflow) Build(ctx context.Context, args BuildArgs) (m.Path, error) {
	project, err := w.fs.ResolveProject(args.Project)
	if err != nil {
		return "", err
	}

	return w.buildStep(ctx, project)
}

func (w *workflow) buildStep(ctx context.Context, project m.Project) (m.Path, error) {
	if !w.fs.HasCMakeLists(project.Dir) {
		return "", fmt.Errorf("%w in %s", adapter.ErrNoCMakeLists, project.Dir)
	}

	executable, result := w.builder.Build(ctx, project)
	if !result.Succeeded {
		slog.Error("build failed", "project", project.Name, "timed_out", result.TimedOut, "error", result.Err)
		w.ui.Failuref("✗ Build failed")

		if result.Err != nil {
			w.ui.Failuref("  %v", result.Err)
		}

		w.ui.Infof("%s", result.Output())

		return "", ErrBuildFailed
	}

	w.ui.Successf("✓ Build successful")
	w.ui.Infof("  Executable: %s", executable)

	return executable, nil
}

// Submit uploads the solution files listed in the exercism config.
func (w *workflow) Submit(ctx context.Context, args SubmitArgs) error {
	project, err := w.fs.ResolveProject(args.Project)
	if err != nil {
		return err
	}

	return w.submit(ctx, project, args.Auto)
}

func (w *workflow) submit(ctx context.Context, project m.Project, auto bool) error {
	config, err := w.fs.ReadExerciseConfig(project.Dir)
	if err != nil {
		if errors.Is(err, adapter.ErrNoExerciseConfig) {
			w.ui.Warnf("No exercism config found, skipping submission")
			return nil
		}

		return err
	}

	files := config.SolutionFiles()
	if len(files) == 0 {
		w.ui.Warnf("No solution files found, skipping submission")
		return nil
	}

	w.ui.Header("Exercism Submission")
	w.ui.Warnf("Files: %s", strings.Join(files, ", "))

	if !auto && !w.ui.Confirm("Submit to Exercism?") {
		w.ui.Warnf("Submission skipped")
		return nil
	}

	result := w.submitter.Submit(ctx, project.Dir, files)
	w.ui.Infof("%s", result.Output())

	if result.Succeeded {
		w.ui.Successf("✓ Successfully submitted to Exercism!")
		return nil
	}

	slog.Error("submission failed", "project", project.Name, "timed_out", result.TimedOut, "error", result.Err)
	w.ui.Failuref("✗ Submission failed")

	switch {
	case strings.Contains(result.Output(), "No files you submitted have changed"):
		w.ui.Warnf("Note: files unchanged since last submission")
	case result.Err != nil:
		w.ui.Warnf("Tip: make sure the exercism CLI is installed and configured")
	}

	return ErrSubmitFailed
}

// Run executes the full pipeline: build, progressive tests, submission.
// A submission problem after a green test run is reported but does not fail
// the pipeline.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	project, err := w.fs.ResolveProject(args.Project)
	if err != nil {
		return err
	}

	w.ui.Header("Building and Testing: " + project.Name)

	w.ui.Warnf("[1/3] Building project...")

	executable, err := w.buildStep(ctx, project)
	if err != nil {
		return err
	}

	w.ui.Warnf("[2/3] Running progressive tests...")

	if err := w.check(ctx, project, executable, nil, args.TestSuffix); err != nil {
		return err
	}

	w.ui.Warnf("[3/3] Submission...")

	if err := w.submit(ctx, project, args.AutoSubmit); err != nil {
		w.ui.Warnf("Note: submission step had issues but tests passed")
	}

	w.ui.Successf("✓ Process completed successfully!")

	return nil
}
