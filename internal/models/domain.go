package models

import (
	"fmt"
	"strings"
)

// Canonical column names. Columns are stored as rows with an explicit
// position so ordering stays queryable, but the five-stage lifecycle
// only ever targets these names.
const (
	ColumnBacklog = "Backlog"
	ColumnToDo    = "To Do"
	ColumnDoing   = "Doing"
	ColumnReview  = "Review"
	ColumnDone    = "Done"
)

// DefaultColumns returns the canonical board columns in order.
func DefaultColumns() []Column {
	return []Column{
		{Name: ColumnBacklog, Position: 0},
		{Name: ColumnToDo, Position: 1},
		{Name: ColumnDoing, Position: 2},
		{Name: ColumnReview, Position: 3},
		{Name: ColumnDone, Position: 4},
	}
}

var canonicalColumns = map[string]string{
	strings.ToLower(ColumnBacklog): ColumnBacklog,
	strings.ToLower(ColumnToDo):    ColumnToDo,
	"todo":                         ColumnToDo,
	strings.ToLower(ColumnDoing):   ColumnDoing,
	strings.ToLower(ColumnReview):  ColumnReview,
	strings.ToLower(ColumnDone):    ColumnDone,
}

// NormalizeColumnName maps user input onto a canonical column name.
// Matching is case-insensitive and accepts "todo" for "To Do".
func NormalizeColumnName(raw string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return "", fmt.Errorf("column name is required")
	}
	name, ok := canonicalColumns[value]
	if !ok {
		return "", fmt.Errorf("unknown column: %s", raw)
	}
	return name, nil
}
