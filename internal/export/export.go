// Package export renders board snapshots as CSV or Markdown.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/adit-rah/project-board/internal/models"
)

const timeLayout = "2006-01-02 15:04:05"

var csvHeader = []string{"ID", "Title", "Description", "Column", "Created", "Updated", "Branch", "PR"}

// WriteCSV emits one row per task with a fixed header. Tasks keep the
// order they were given in; unknown column IDs render as "Unknown".
func WriteCSV(w io.Writer, columns []models.Column, tasks []models.Task) error {
	names := make(map[int64]string, len(columns))
	for _, col := range columns {
		names[col.ID] = col.Name
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, task := range tasks {
		name, ok := names[task.ColumnID]
		if !ok {
			name = "Unknown"
		}
		row := []string{
			fmt.Sprintf("%d", task.ID),
			task.Title,
			task.Description,
			name,
			task.CreatedAt.Format(timeLayout),
			task.UpdatedAt.Format(timeLayout),
			task.BranchName,
			task.PRUrl,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write CSV row for task %d: %w", task.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMarkdown emits a section per column in board order, each task a
// bullet with its description, branch, and PR nested beneath.
func WriteMarkdown(w io.Writer, columns []models.Column, tasks []models.Task) error {
	byColumn := make(map[int64][]models.Task, len(columns))
	for _, task := range tasks {
		byColumn[task.ColumnID] = append(byColumn[task.ColumnID], task)
	}

	if _, err := fmt.Fprintf(w, "# ProjectBoard Export\n\n"); err != nil {
		return err
	}
	for _, col := range columns {
		colTasks := byColumn[col.ID]
		if _, err := fmt.Fprintf(w, "## %s (%d)\n\n", col.Name, len(colTasks)); err != nil {
			return err
		}
		for _, task := range colTasks {
			if _, err := fmt.Fprintf(w, "- **#%d**: %s\n", task.ID, task.Title); err != nil {
				return err
			}
			if task.Description != "" {
				fmt.Fprintf(w, "  - %s\n", task.Description)
			}
			if task.BranchName != "" {
				fmt.Fprintf(w, "  - Branch: `%s`\n", task.BranchName)
			}
			if task.PRUrl != "" {
				fmt.Fprintf(w, "  - PR: %s\n", task.PRUrl)
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}
