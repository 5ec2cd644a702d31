package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/adit-rah/project-board/internal/models"
)

// TaskUpdate describes fields to update. Nil fields are left untouched;
// the whole delta is applied in a single UPDATE statement so the
// orchestrator can treat each persistence step as indivisible.
type TaskUpdate struct {
	Title       *string
	Description *string
	ColumnID    *int64
	Assignee    *string
	BranchName  *string
	PRUrl       *string
}

// CreateTask inserts a task into the given column.
func (s *Store) CreateTask(ctx context.Context, title, description string, columnID int64) (*models.Task, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	now := time.Now()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (title, description, column_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		title,
		nullIfEmpty(description),
		columnID,
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return s.Task(ctx, id)
}

// Task returns a task by id, or nil when it does not exist.
func (s *Store) Task(ctx context.Context, id int64) (*models.Task, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, column_id, assignee, branch_name, pr_url, created_at, updated_at
		FROM tasks WHERE id = ?
	`, id)
	return scanTask(row)
}

// Tasks returns tasks for one column, or all tasks ordered by column
// position then creation time when columnID is nil.
func (s *Store) Tasks(ctx context.Context, columnID *int64) ([]models.Task, error) {
	query := `
		SELECT t.id, t.title, t.description, t.column_id, t.assignee, t.branch_name, t.pr_url, t.created_at, t.updated_at
		FROM tasks t
	`
	args := []any{}
	if columnID != nil {
		query += " WHERE t.column_id = ? ORDER BY t.created_at DESC"
		args = append(args, *columnID)
	} else {
		query += " JOIN columns c ON c.id = t.column_id ORDER BY c.position ASC, t.created_at DESC"
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

// UpdateTask applies a field delta to one task atomically.
func (s *Store) UpdateTask(ctx context.Context, id int64, update TaskUpdate) error {
	set := []string{}
	args := []any{}

	if update.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *update.Title)
	}
	if update.Description != nil {
		set = append(set, "description = ?")
		args = append(args, nullIfEmpty(*update.Description))
	}
	if update.ColumnID != nil {
		set = append(set, "column_id = ?")
		args = append(args, *update.ColumnID)
	}
	if update.Assignee != nil {
		set = append(set, "assignee = ?")
		args = append(args, nullIfEmpty(*update.Assignee))
	}
	if update.BranchName != nil {
		set = append(set, "branch_name = ?")
		args = append(args, nullIfEmpty(*update.BranchName))
	}
	if update.PRUrl != nil {
		set = append(set, "pr_url = ?")
		args = append(args, nullIfEmpty(*update.PRUrl))
	}

	if len(set) == 0 {
		return nil
	}

	set = append(set, "updated_at = ?")
	args = append(args, formatTime(time.Now()))
	args = append(args, id)

	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", strings.Join(set, ", "))
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("task %d not found", id)
	}
	return nil
}

func scanTask(scanner interface {
	Scan(dest ...any) error
}) (*models.Task, error) {
	var task models.Task
	var description, assignee, branchName, prURL sql.NullString
	var createdAt, updatedAt string

	if err := scanner.Scan(
		&task.ID,
		&task.Title,
		&description,
		&task.ColumnID,
		&assignee,
		&branchName,
		&prURL,
		&createdAt,
		&updatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	task.Description = description.String
	task.Assignee = assignee.String
	task.BranchName = branchName.String
	task.PRUrl = prURL.String

	parsedCreated, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	parsedUpdated, err := parseTime(updatedAt)
	if err != nil {
		return nil, err
	}
	task.CreatedAt = parsedCreated
	task.UpdatedAt = parsedUpdated

	return &task, nil
}
