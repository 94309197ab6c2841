package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// PageOutput displays text, paging through a viewport when stdout is a
// terminal and the text is taller than it. Short text, non-TTY output and
// plain writers print directly.
func PageOutput(w io.Writer, text string, tty bool) error {
	file, isFile := w.(*os.File)
	if !tty || !isFile {
		_, err := fmt.Fprint(w, text)
		return err
	}

	_, height, err := term.GetSize(int(file.Fd()))
	if err != nil || strings.Count(text, "\n")+1 <= height-1 {
		_, err := fmt.Fprint(w, text)
		return err
	}

	program := tea.NewProgram(newPagerModel(text), tea.WithOutput(file), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	// The alt screen is gone after the pager exits; reprint so the text
	// stays in the scrollback for copy/paste.
	_, err = fmt.Fprint(w, text)

	return err
}

type pagerModel struct {
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(content string) pagerModel {
	return pagerModel{content: content}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		footerHeight := 1
		if !p.ready {
			p.viewport = viewport.New(msg.Width, msg.Height-footerHeight)
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = msg.Height - footerHeight
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	if !p.ready {
		return "\n"
	}

	footer := Warning(fmt.Sprintf("%3.0f%% (arrows to scroll, q to quit)", p.viewport.ScrollPercent()*100))

	return p.viewport.View() + "\n" + footer
}
