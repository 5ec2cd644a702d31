package store

import (
	"context"
	"fmt"
	"time"

	"github.com/adit-rah/project-board/internal/models"
)

// CreateComment appends a comment to a task.
func (s *Store) CreateComment(ctx context.Context, taskID int64, author, text string) (*models.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("comment text is required")
	}
	if author == "" {
		author = "unknown"
	}

	now := time.Now()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO comments (task_id, author, text, created_at) VALUES (?, ?, ?, ?)",
		taskID, author, text, formatTime(now))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Comment{ID: id, TaskID: taskID, Author: author, Text: text, CreatedAt: now.UTC()}, nil
}

// Comments returns comments for a task in chronological order.
func (s *Store) Comments(ctx context.Context, taskID int64) ([]models.Comment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, task_id, author, text, created_at FROM comments WHERE task_id = ? ORDER BY created_at ASC, id ASC",
		taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		var createdAt string
		if err := rows.Scan(&comment.ID, &comment.TaskID, &comment.Author, &comment.Text, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := parseTime(createdAt)
		if err != nil {
			return nil, err
		}
		comment.CreatedAt = parsed
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}
