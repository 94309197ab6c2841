package controller

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "catchup.dev/pkg/catchup/internal/model"
)

// SimpleUI implements UI by printing through the cobra command's writers.
type SimpleUI struct {
	cmd *cobra.Command
	tty bool
}

// NewUI creates the UI for a command. tty enables paging of long test output.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return &SimpleUI{cmd: cmd, tty: tty}
}

// Header prints a ruled section title.
func (s *SimpleUI) Header(title string) {
	s.printf("\n%s\n%s\n%s\n", Headline(Rule()), Headline(title), Headline(Rule()))
}

// Infof prints an undecorated progress line.
func (s *SimpleUI) Infof(format string, args ...any) {
	s.printf(format+"\n", args...)
}

// Warnf prints a cautionary line.
func (s *SimpleUI) Warnf(format string, args ...any) {
	s.printf("%s\n", Warning(fmt.Sprintf(format, args...)))
}

// Successf prints a passing-state line.
func (s *SimpleUI) Successf(format string, args ...any) {
	s.printf("%s\n", Success(fmt.Sprintf(format, args...)))
}

// Failuref prints a failing-state line.
func (s *SimpleUI) Failuref(format string, args ...any) {
	s.printf("%s\n", Failure(fmt.Sprintf(format, args...)))
}

// AmbiguousTestFiles warns which matching test files were ignored.
func (s *SimpleUI) AmbiguousTestFiles(chosen m.Path, ignored []m.Path) {
	names := make([]string, 0, len(ignored))
	for _, path := range ignored {
		names = append(names, string(path))
	}

	s.Warnf("Multiple test files found, using %s (ignored: %s)", chosen, strings.Join(names, ", "))
}

// NoTagsFallback announces the single unfiltered run.
func (s *SimpleUI) NoTagsFallback() {
	s.Warnf("No task tags found, running all tests...")
}

// ProgressiveStarted prints the schedule header.
func (s *SimpleUI) ProgressiveStarted(tags []m.TaskTag) {
	s.Header(fmt.Sprintf("Progressive Test Execution (%d tasks)", len(tags)))
}

// TagStarted prints the per-tag progress line.
func (s *SimpleUI) TagStarted(index, total int, tag m.TaskTag) {
	s.Warnf("[%d/%d] Running %s...", index, total, tag)
}

// TagPassed prints the per-tag pass line with scraped counts.
func (s *SimpleUI) TagPassed(tag m.TaskTag, result m.RunResult) {
	s.Successf("✓ %s passed (%s assertions in %s test case(s))",
		tag, countLabel(result.Counts.Assertions, result.Counts.Known),
		countLabel(result.Counts.TestCases, result.Counts.Known))
}

// TagFailed prints the failing run's output and the progress summary.
func (s *SimpleUI) TagFailed(tag m.TaskTag, result m.RunResult, report m.ProgressiveReport) {
	s.Failuref("✗ %s failed%s", tag, failureDetail(result))
	s.Header("Test Output")
	s.pageOrPrint(result.Output())

	s.Warnf("Summary:")
	s.Successf("  Passed:     %s", m.JoinTags(report.Passed))
	s.Failuref("  Failed:     %s", tag)
	s.Warnf("  Not tested: %s", m.JoinTags(report.Remaining()))
	s.printTable(report)
}

// FinalVerifyStarted prints the full-suite header.
func (s *SimpleUI) FinalVerifyStarted() {
	s.Header("Running complete test suite...")
}

// ReportVerdict prints the terminal verdict for non-aborted reports.
func (s *SimpleUI) ReportVerdict(report m.ProgressiveReport) {
	if report.FinalRun != nil {
		s.pageOrPrint(report.FinalRun.Output())
	}

	switch {
	case report.Succeeded() && report.Filtered:
		s.Successf("✓ Selected tasks passed: %s", m.JoinTags(report.Passed))
		s.Warnf("Full-suite verification skipped (explicit task selection)")
	case report.Succeeded() && len(report.Tags) > 0:
		s.Successf("✓ All tests passed! Completed tasks: %s", m.JoinTags(report.Passed))
	case report.Succeeded():
		s.Successf("✓ All tests passed!")
	case report.Failed == nil:
		// Every tag passed in isolation but the aggregate run did not.
		s.Failuref("✗ Complete test suite failed%s", failureDetail(*report.FinalRun))
	}

	s.printTable(report)
}

// Confirm asks a yes/no question on the command's input, defaulting to no.
func (s *SimpleUI) Confirm(prompt string) bool {
	s.printf("%s (y/N): ", prompt)

	reader := bufio.NewReader(s.cmd.InOrStdin())

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "y" || answer == "yes"
}

func (s *SimpleUI) printTable(report m.ProgressiveReport) {
	if len(report.Tags) == 0 {
		return
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Task", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, tag := range report.Tags {
		table.Append([]string{tag.String(), tagStatus(report, tag)})
	}

	verdict := "FAIL"
	if report.Succeeded() {
		verdict = "PASS"
	}

	table.SetFooter([]string{"Result", verdict})
	table.Render()

	s.printf("\n%s", buf.String())
}

func tagStatus(report m.ProgressiveReport, tag m.TaskTag) string {
	if report.Failed != nil && *report.Failed == tag {
		return "failed"
	}

	for _, passed := range report.Passed {
		if passed == tag {
			return "passed"
		}
	}

	return "not run"
}

// failureDetail annotates a failure line with the structured cause when the
// binary never produced a normal test failure (timeout or launch error).
func failureDetail(result m.RunResult) string {
	switch {
	case result.TimedOut:
		return " (timed out)"
	case result.Err != nil:
		return fmt.Sprintf(" (%v)", result.Err)
	default:
		return ""
	}
}

func countLabel(n int, known bool) string {
	if !known {
		return "?"
	}

	return fmt.Sprintf("%d", n)
}

func (s *SimpleUI) pageOrPrint(text string) {
	if err := PageOutput(s.cmd.OutOrStdout(), text, s.tty); err != nil {
		s.printf("%s", text)
	}
}

func (s *SimpleUI) printf(format string, args ...any) {
	fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
