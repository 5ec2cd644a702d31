package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adit-rah/project-board/internal/models"
)

// CreateIdea records a brainstorm idea.
func (s *Store) CreateIdea(ctx context.Context, content string) (*models.Idea, error) {
	if content == "" {
		return nil, fmt.Errorf("idea content is required")
	}

	now := time.Now()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO ideas (content, created_at) VALUES (?, ?)",
		content, formatTime(now))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Idea{ID: id, Content: content, CreatedAt: now.UTC()}, nil
}

// Idea returns an idea by id, or nil.
func (s *Store) Idea(ctx context.Context, id int64) (*models.Idea, error) {
	return scanIdea(s.db.QueryRowContext(ctx,
		"SELECT id, content, promoted_task_id, created_at FROM ideas WHERE id = ?", id))
}

// Ideas returns all ideas, newest first.
func (s *Store) Ideas(ctx context.Context) ([]models.Idea, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, content, promoted_task_id, created_at FROM ideas ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ideas []models.Idea
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, err
		}
		ideas = append(ideas, *idea)
	}
	return ideas, rows.Err()
}

// MarkIdeaPromoted stamps the task created from an idea. The idea row
// is kept for history.
func (s *Store) MarkIdeaPromoted(ctx context.Context, id, taskID int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE ideas SET promoted_task_id = ? WHERE id = ?", taskID, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("idea %d not found", id)
	}
	return nil
}

func scanIdea(scanner interface {
	Scan(dest ...any) error
}) (*models.Idea, error) {
	var idea models.Idea
	var promoted sql.NullInt64
	var createdAt string

	if err := scanner.Scan(&idea.ID, &idea.Content, &promoted, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if promoted.Valid {
		idea.PromotedTaskID = &promoted.Int64
	}

	parsed, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	idea.CreatedAt = parsed
	return &idea, nil
}
