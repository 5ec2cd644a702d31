package models

import "time"

// Project ties one board to one repository. The repo path is unique,
// so there is exactly one board per checkout.
type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	RepoPath  string    `json:"repo_path"`
	CreatedAt time.Time `json:"created_at"`
}

// Column is one board stage. Position defines board order.
type Column struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Task is a single card on the board. A task always belongs to exactly
// one column. BranchName and PRUrl are recorded only after the matching
// external effect has been confirmed.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ColumnID    int64     `json:"column_id"`
	Assignee    string    `json:"assignee,omitempty"`
	BranchName  string    `json:"branch_name,omitempty"`
	PRUrl       string    `json:"pr_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Comment is an append-only note on a task.
type Comment struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"task_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Idea is a free-form brainstorm entry. Promotion creates a task and
// stamps PromotedTaskID; the idea itself is kept for history.
type Idea struct {
	ID             int64     `json:"id"`
	Content        string    `json:"content"`
	PromotedTaskID *int64    `json:"promoted_task_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ActivityEntry is one append-only audit record. Metadata is free-form
// structured data serialized as JSON in storage.
type ActivityEntry struct {
	ID        int64          `json:"id"`
	Event     string         `json:"event"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
