// Package lifecycle sequences the side-effecting steps that drive a
// task through the board: branch creation, commits, pushes, and pull
// requests. The state machine is pure; the Orchestrator executes its
// plans against the storage, version control, and remote review ports,
// persisting after every externally observable effect so a crash never
// leaves the record claiming work that did not happen.
package lifecycle

import (
	"context"

	"github.com/adit-rah/project-board/internal/models"
	"github.com/adit-rah/project-board/internal/store"
)

// Storage is the durable record the orchestrator writes through.
// UpdateTask must apply its whole delta atomically.
type Storage interface {
	Task(ctx context.Context, id int64) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, update store.TaskUpdate) error
	ColumnByID(ctx context.Context, id int64) (*models.Column, error)
	MustColumnByName(ctx context.Context, name string) (*models.Column, error)
	AppendActivity(ctx context.Context, event string, metadata map[string]any) error
	StepCompleted(ctx context.Context, taskID int64, event, branch string) (bool, error)
}

// PushResult reports whether a push transferred anything.
type PushResult string

const (
	Pushed          PushResult = "pushed"
	AlreadyUpToDate PushResult = "up_to_date"
)

// VersionControl is the git port. Commit returns ErrNothingToCommit
// when the index holds no staged changes.
type VersionControl interface {
	BranchExists(name string) (bool, error)
	CreateAndCheckoutBranch(name string) error
	CheckoutBranch(name string) error
	HasStagedChanges() (bool, error)
	Commit(message string) (string, error)
	Push(ctx context.Context, branch string) (PushResult, error)
	CurrentBranch() (string, error)
	IsWorkingTreeDirty() (bool, error)
}

// PRStatus is the remote state of a pull request.
type PRStatus string

const (
	PROpen   PRStatus = "open"
	PRMerged PRStatus = "merged"
	PRClosed PRStatus = "closed"
)

// PullRequest identifies a created or found pull request.
type PullRequest struct {
	Number int
	URL    string
}

// RemoteReview is the code-hosting port. Implementations return
// ErrAuthentication when no credential is configured and ErrRemoteGone
// when a PR reference no longer resolves.
type RemoteReview interface {
	CreatePR(ctx context.Context, branch, base, title, body string) (PullRequest, error)
	FindOpenPR(ctx context.Context, branch string) (*PullRequest, error)
	Status(ctx context.Context, prURL string) (PRStatus, error)
}
