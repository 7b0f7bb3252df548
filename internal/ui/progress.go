package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"fanc/internal/buildpipeline"
)

// rowState is where one source file stands in the build.
type rowState uint8

const (
	rowQueued rowState = iota
	rowCompiling
	rowCompiled
	rowCached
	rowWriting
	rowDone
	rowFailed
)

var rowStates = [...]struct {
	label string
	// share of the file's work finished in this state
	weight float64
	color  lipgloss.Color
}{
	rowQueued:    {"queued", 0, "7"},
	rowCompiling: {"compiling", 0.3, "6"},
	rowCompiled:  {"compiled", 0.8, "6"},
	rowCached:    {"cached", 0.8, "2"},
	rowWriting:   {"writing", 0.9, "6"},
	rowDone:      {"done", 1, "2"},
	rowFailed:    {"error", 1, "1"},
}

func (s rowState) String() string { return rowStates[s].label }

func (s rowState) style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(rowStates[s].color)
}

// nextState maps a pipeline event onto a row state; ok is false for events
// that do not move the row.
func nextState(stage buildpipeline.Stage, status buildpipeline.Status) (rowState, bool) {
	switch status {
	case buildpipeline.StatusQueued:
		return rowQueued, true
	case buildpipeline.StatusError:
		return rowFailed, true
	case buildpipeline.StatusCached:
		return rowCached, true
	}
	switch stage {
	case buildpipeline.StageCompile:
		if status == buildpipeline.StatusDone {
			return rowCompiled, true
		}
		return rowCompiling, status == buildpipeline.StatusWorking
	case buildpipeline.StageWrite:
		if status == buildpipeline.StatusDone {
			return rowDone, true
		}
		return rowWriting, status == buildpipeline.StatusWorking
	}
	return rowQueued, false
}

type fileRow struct {
	path    string
	state   rowState
	elapsed time.Duration
	// detail is the diagnostic line of a failed file.
	detail string
}

type progressModel struct {
	title   string
	events  <-chan buildpipeline.Event
	spinner spinner.Model
	prog    progress.Model
	rows    []fileRow
	index   map[string]int
	width   int
	done    bool
}

type eventMsg buildpipeline.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders build progress.
// It quits when events is closed.
func NewProgressModel(title string, files []string, events <-chan buildpipeline.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	rows := make([]fileRow, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		rows[i] = fileRow{path: file}
		index[file] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		rows:    rows,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(buildpipeline.Event(msg)), m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		next, cmd := m.prog.Update(msg)
		m.prog = next.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	header := fmt.Sprintf("%s %s", m.spinner.View(), m.title)
	if m.done {
		header = "done: " + m.title
	}
	finished, failed := m.counts()
	header += fmt.Sprintf("  [%d/%d", finished, len(m.rows))
	if failed > 0 {
		header += fmt.Sprintf(", %d failed", failed)
	}
	header += "]"

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")).Render(header))
	b.WriteString("\n\n")

	const statusWidth = 10
	nameWidth := max(m.width-statusWidth-14, 20)
	for _, row := range m.rows {
		status := row.state.style().Render(fmt.Sprintf("%*s", statusWidth, row.state))
		fmt.Fprintf(&b, "  %s %s", status, truncate(row.path, nameWidth))
		if row.elapsed > 0 {
			fmt.Fprintf(&b, " %6.1fms", float64(row.elapsed)/float64(time.Millisecond))
		}
		b.WriteString("\n")
		if row.detail != "" {
			fmt.Fprintf(&b, "  %*s %s\n", statusWidth, "", truncate(row.detail, nameWidth))
		}
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) apply(ev buildpipeline.Event) tea.Cmd {
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	state, ok := nextState(ev.Stage, ev.Status)
	if !ok {
		return nil
	}
	row := &m.rows[idx]
	row.state = state
	row.elapsed += ev.Elapsed
	if state == rowFailed && ev.Err != nil {
		row.detail = ev.Err.Error()
	}
	return m.prog.SetPercent(m.percent())
}

func (m *progressModel) counts() (finished, failed int) {
	for _, row := range m.rows {
		switch row.state {
		case rowDone:
			finished++
		case rowFailed:
			finished++
			failed++
		}
	}
	return finished, failed
}

func (m *progressModel) percent() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	total := 0.0
	for _, row := range m.rows {
		total += rowStates[row.state].weight
	}
	return total / float64(len(m.rows))
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
