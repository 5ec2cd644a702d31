package board

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adit-rah/project-board/internal/models"
)

func fixedLoader(columns []models.Column, tasks []models.Task) Loader {
	return func(ctx context.Context) ([]models.Column, []models.Task, error) {
		return columns, tasks, nil
	}
}

func testColumns() []models.Column {
	return []models.Column{
		{ID: 1, Name: models.ColumnBacklog, Position: 0},
		{ID: 2, Name: models.ColumnToDo, Position: 1},
		{ID: 3, Name: models.ColumnDoing, Position: 2},
	}
}

func testTasks() []models.Task {
	return []models.Task{
		{ID: 1, Title: "First", ColumnID: 1},
		{ID: 2, Title: "Second", ColumnID: 1},
		{ID: 3, Title: "Active", ColumnID: 3, BranchName: "feature/3-active"},
	}
}

// loadedModel drives Init's command through Update so the model holds data.
func loadedModel(t *testing.T, load Loader) Model {
	t.Helper()
	m := NewModel(load)
	cmd := m.Init()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next.(Model)
}

func keyPress(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestLoadPopulatesBoard(t *testing.T) {
	m := loadedModel(t, fixedLoader(testColumns(), testTasks()))

	require.Len(t, m.columns, 3)
	assert.Len(t, m.tasks[int64(1)], 2)
	assert.Len(t, m.tasks[int64(3)], 1)
}

func TestColumnNavigationStopsAtEdges(t *testing.T) {
	m := loadedModel(t, fixedLoader(testColumns(), testTasks()))

	m = keyPress(m, "left")
	assert.Equal(t, 0, m.col, "left at first column stays put")

	m = keyPress(m, "right")
	m = keyPress(m, "right")
	assert.Equal(t, 2, m.col)

	m = keyPress(m, "right")
	assert.Equal(t, 2, m.col, "right at last column stays put")
}

func TestTaskCursorResetsOnColumnChange(t *testing.T) {
	m := loadedModel(t, fixedLoader(testColumns(), testTasks()))

	m = keyPress(m, "down")
	assert.Equal(t, 1, m.task)

	m = keyPress(m, "down")
	assert.Equal(t, 1, m.task, "cursor stops at last task")

	m = keyPress(m, "right")
	assert.Equal(t, 0, m.task, "cursor resets when changing column")
}

func TestQuitKey(t *testing.T) {
	m := loadedModel(t, fixedLoader(testColumns(), nil))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewShowsColumnsAndCounts(t *testing.T) {
	m := loadedModel(t, fixedLoader(testColumns(), testTasks()))
	m.width = 120

	view := m.View()
	assert.Contains(t, view, "Backlog (2)")
	assert.Contains(t, view, "To Do (0)")
	assert.Contains(t, view, "Doing (1)")
	assert.Contains(t, view, "#1 First")
}

func TestViewShowsLoadError(t *testing.T) {
	load := func(ctx context.Context) ([]models.Column, []models.Task, error) {
		return nil, nil, errors.New("database is locked")
	}
	m := loadedModel(t, load)

	view := m.View()
	assert.True(t, strings.Contains(view, "database is locked"), "error must surface in the view")
}

func TestRefreshPicksUpNewTasks(t *testing.T) {
	tasks := testTasks()
	load := func(ctx context.Context) ([]models.Column, []models.Task, error) {
		return testColumns(), tasks, nil
	}
	m := loadedModel(t, load)
	require.Len(t, m.tasks[int64(1)], 2)

	tasks = append(tasks, models.Task{ID: 4, Title: "Late arrival", ColumnID: 1})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	reloaded, _ := next.(Model).Update(cmd())

	assert.Len(t, reloaded.(Model).tasks[int64(1)], 3)
}

func TestCursorClampAfterShrink(t *testing.T) {
	tasks := testTasks()
	load := func(ctx context.Context) ([]models.Column, []models.Task, error) {
		return testColumns(), tasks, nil
	}
	m := loadedModel(t, load)
	m = keyPress(m, "down")
	require.Equal(t, 1, m.task)

	// The board shrinks to one task under the cursor.
	tasks = tasks[:1]
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	reloaded, _ := next.(Model).Update(cmd())

	assert.Equal(t, 0, reloaded.(Model).task)
}
