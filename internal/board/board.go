// Package board is the interactive terminal view of the task board.
package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adit-rah/project-board/internal/models"
	"github.com/adit-rah/project-board/internal/store"
)

// Loader fetches the current board state. Split out from the store so
// tests can feed the model fixed data.
type Loader func(ctx context.Context) ([]models.Column, []models.Task, error)

// StoreLoader adapts a store to the Loader signature.
func StoreLoader(st *store.Store) Loader {
	return func(ctx context.Context) ([]models.Column, []models.Task, error) {
		columns, err := st.Columns(ctx)
		if err != nil {
			return nil, nil, err
		}
		tasks, err := st.Tasks(ctx, nil)
		if err != nil {
			return nil, nil, err
		}
		return columns, tasks, nil
	}
}

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Refresh, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right, k.Up, k.Down}, {k.Refresh, k.Quit}}
}

var defaultKeys = keyMap{
	Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
	Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev task")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next task")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeColumnStyle = columnStyle.
				BorderForeground(lipgloss.Color("205"))

	headerStyle       = lipgloss.NewStyle().Bold(true)
	activeHeaderStyle = headerStyle.Foreground(lipgloss.Color("205"))

	cardStyle   = lipgloss.NewStyle()
	cursorStyle = lipgloss.NewStyle().Reverse(true)

	badgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type boardLoadedMsg struct {
	columns []models.Column
	tasks   []models.Task
}

type loadErrMsg struct{ err error }

// Model is the bubbletea model for the board view.
type Model struct {
	load Loader
	keys keyMap
	help help.Model

	columns []models.Column
	tasks   map[int64][]models.Task

	col    int
	task   int
	width  int
	height int
	err    error
}

func NewModel(load Loader) Model {
	return Model{
		load:  load,
		keys:  defaultKeys,
		help:  help.New(),
		tasks: map[int64][]models.Task{},
	}
}

func (m Model) Init() tea.Cmd {
	return m.refresh()
}

func (m Model) refresh() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		columns, tasks, err := load(context.Background())
		if err != nil {
			return loadErrMsg{err: err}
		}
		return boardLoadedMsg{columns: columns, tasks: tasks}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case boardLoadedMsg:
		m.columns = msg.columns
		m.tasks = groupTasks(msg.tasks)
		m.err = nil
		m.clampCursor()
		return m, nil

	case loadErrMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			if m.col > 0 {
				m.col--
				m.task = 0
			}
		case key.Matches(msg, m.keys.Right):
			if m.col < len(m.columns)-1 {
				m.col++
				m.task = 0
			}
		case key.Matches(msg, m.keys.Up):
			if m.task > 0 {
				m.task--
			}
		case key.Matches(msg, m.keys.Down):
			if m.task < len(m.currentTasks())-1 {
				m.task++
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, m.refresh()
		}
	}
	return m, nil
}

func (m *Model) clampCursor() {
	if m.col >= len(m.columns) {
		m.col = len(m.columns) - 1
	}
	if m.col < 0 {
		m.col = 0
	}
	if n := len(m.currentTasks()); m.task >= n {
		m.task = n - 1
	}
	if m.task < 0 {
		m.task = 0
	}
}

func (m Model) currentTasks() []models.Task {
	if m.col >= len(m.columns) {
		return nil
	}
	return m.tasks[m.columns[m.col].ID]
}

func groupTasks(tasks []models.Task) map[int64][]models.Task {
	grouped := make(map[int64][]models.Task)
	for _, t := range tasks {
		grouped[t.ColumnID] = append(grouped[t.ColumnID], t)
	}
	return grouped
}

func (m Model) View() string {
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" + m.help.View(m.keys)
	}
	if len(m.columns) == 0 {
		return titleStyle.Render("ProjectBoard") + "\n\nLoading board...\n"
	}

	width := m.width
	if width <= 0 {
		width = 100
	}
	colWidth := width/len(m.columns) - 2
	if colWidth < 16 {
		colWidth = 16
	}

	rendered := make([]string, 0, len(m.columns))
	for i, col := range m.columns {
		rendered = append(rendered, m.renderColumn(i, col, colWidth))
	}
	boardRow := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("ProjectBoard"),
		boardRow,
		m.help.View(m.keys),
	)
}

func (m Model) renderColumn(index int, col models.Column, width int) string {
	active := index == m.col
	hStyle, cStyle := headerStyle, columnStyle
	if active {
		hStyle, cStyle = activeHeaderStyle, activeColumnStyle
	}

	tasks := m.tasks[col.ID]
	header := hStyle.Render(fmt.Sprintf("%s (%d)", col.Name, len(tasks)))

	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, header)
	for i, task := range tasks {
		lines = append(lines, m.renderCard(task, active && i == m.task, width-2))
	}
	if len(tasks) == 0 {
		lines = append(lines, badgeStyle.Render("(empty)"))
	}

	return cStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderCard(task models.Task, cursor bool, width int) string {
	title := fmt.Sprintf("#%d %s", task.ID, task.Title)
	if width > 3 && len(title) > width {
		title = title[:width-3] + "..."
	}

	var badges []string
	if task.BranchName != "" {
		badges = append(badges, "⎇")
	}
	if task.PRUrl != "" {
		badges = append(badges, "PR")
	}

	line := title
	if len(badges) > 0 {
		line += " " + badgeStyle.Render(strings.Join(badges, " "))
	}
	if cursor {
		return cursorStyle.Render(line)
	}
	return cardStyle.Render(line)
}

// Run starts the interactive board in the caller's terminal and blocks
// until the user quits.
func Run(load Loader) error {
	p := tea.NewProgram(NewModel(load), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
