package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"fanc/internal/buildpipeline"
)

// RunProgress renders build progress to out until events is closed.
// Keyboard input is not read.
func RunProgress(title string, files []string, events <-chan buildpipeline.Event, out io.Writer) error {
	p := tea.NewProgram(
		NewProgressModel(title, files, events),
		tea.WithOutput(out),
		tea.WithInput(nil),
	)
	_, err := p.Run()
	return err
}
