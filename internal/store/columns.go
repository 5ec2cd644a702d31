package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/adit-rah/project-board/internal/models"
)

// SeedDefaultColumns inserts the five canonical columns in order.
// Idempotent: an already seeded board is left untouched.
func (s *Store) SeedDefaultColumns(ctx context.Context) ([]models.Column, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, col := range models.DefaultColumns() {
		if _, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO columns (name, position) VALUES (?, ?)",
			col.Name, col.Position); err != nil {
			return nil, err
		}
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return s.Columns(ctx)
}

// Columns returns all columns ordered by board position.
func (s *Store) Columns(ctx context.Context) ([]models.Column, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, position FROM columns ORDER BY position ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []models.Column
	for rows.Next() {
		var col models.Column
		if err := rows.Scan(&col.ID, &col.Name, &col.Position); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

// ColumnByName returns the column with the given name, or nil.
func (s *Store) ColumnByName(ctx context.Context, name string) (*models.Column, error) {
	return s.scanColumn(s.db.QueryRowContext(ctx,
		"SELECT id, name, position FROM columns WHERE name = ?", name))
}

// ColumnByID returns the column with the given id, or nil.
func (s *Store) ColumnByID(ctx context.Context, id int64) (*models.Column, error) {
	return s.scanColumn(s.db.QueryRowContext(ctx,
		"SELECT id, name, position FROM columns WHERE id = ?", id))
}

// MustColumnByName is ColumnByName that errors when the column is missing.
// Board bootstrap guarantees the canonical columns exist, so a miss here
// means the database was tampered with.
func (s *Store) MustColumnByName(ctx context.Context, name string) (*models.Column, error) {
	col, err := s.ColumnByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if col == nil {
		return nil, fmt.Errorf("column %q not found; board not initialized?", name)
	}
	return col, nil
}

func (s *Store) scanColumn(row *sql.Row) (*models.Column, error) {
	var col models.Column
	if err := row.Scan(&col.ID, &col.Name, &col.Position); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &col, nil
}
