package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adit-rah/project-board/internal/models"
)

// CreateProject inserts the project row for a repository. The repo path
// is unique, so initializing twice fails here.
func (s *Store) CreateProject(ctx context.Context, name, repoPath string) (*models.Project, error) {
	if name == "" || repoPath == "" {
		return nil, fmt.Errorf("project name and repo path are required")
	}

	now := time.Now()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO projects (name, repo_path, created_at) VALUES (?, ?, ?)",
		name, repoPath, formatTime(now))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Project{ID: id, Name: name, RepoPath: repoPath, CreatedAt: now.UTC()}, nil
}

// ProjectByPath returns the project for a repository path, or nil.
func (s *Store) ProjectByPath(ctx context.Context, repoPath string) (*models.Project, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, repo_path, created_at FROM projects WHERE repo_path = ?", repoPath)

	var project models.Project
	var createdAt string
	if err := row.Scan(&project.ID, &project.Name, &project.RepoPath, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	parsed, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	project.CreatedAt = parsed
	return &project, nil
}
