package controller

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are immutable lipgloss values; each helper is a pure mapping from
// text to decorated text, there is no process-wide color state.
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

const ruleWidth = 50

// Rule returns a horizontal separator line.
func Rule() string {
	return strings.Repeat("=", ruleWidth)
}

// Headline decorates section titles.
func Headline(text string) string {
	return headerStyle.Render(text)
}

// Success decorates passing-state text.
func Success(text string) string {
	return successStyle.Render(text)
}

// Failure decorates failing-state text.
func Failure(text string) string {
	return failureStyle.Render(text)
}

// Warning decorates cautionary text.
func Warning(text string) string {
	return warnStyle.Render(text)
}
