package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/adit-rah/project-board/internal/models"
)

const defaultActivityLimit = 50

// AppendActivity writes one append-only audit record. Metadata is
// serialized as JSON so individual keys stay queryable via json_extract.
func (s *Store) AppendActivity(ctx context.Context, event string, metadata map[string]any) error {
	var meta any
	if len(metadata) > 0 {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		meta = string(raw)
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO activity_log (event, metadata, created_at) VALUES (?, ?, ?)",
		event, meta, formatTime(time.Now()))
	return err
}

// Activity returns the most recent activity entries, newest first.
func (s *Store) Activity(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, event, metadata, created_at FROM activity_log ORDER BY created_at DESC, id DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ActivityEntry
	for rows.Next() {
		var entry models.ActivityEntry
		var metadata sql.NullString
		var createdAt string
		if err := rows.Scan(&entry.ID, &entry.Event, &metadata, &createdAt); err != nil {
			return nil, err
		}
		if metadata.Valid && metadata.String != "" {
			if err := json.Unmarshal([]byte(metadata.String), &entry.Metadata); err != nil {
				return nil, err
			}
		}
		parsed, err := parseTime(createdAt)
		if err != nil {
			return nil, err
		}
		entry.CreatedAt = parsed
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// StepCompleted reports whether the activity log records the given event
// for a task, optionally scoped to one branch. The orchestrator uses this
// to recognize work that finished before a crash and must not be redone.
func (s *Store) StepCompleted(ctx context.Context, taskID int64, event, branch string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM activity_log
		WHERE event = ?
		AND json_extract(metadata, '$.task_id') = ?
		AND (? = '' OR json_extract(metadata, '$.branch') = ?)
	`, event, taskID, branch, branch).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
