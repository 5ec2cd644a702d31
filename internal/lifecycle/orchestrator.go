package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adit-rah/project-board/internal/models"
	"github.com/adit-rah/project-board/internal/store"
)

// Activity events written by the orchestrator, one per confirmed
// external effect plus one per completed transition.
const (
	eventBranchCreated = "branch_created"
	eventCommit        = "commit"
	eventPush          = "push"
	eventPRCreated     = "pr_created"

	eventTaskStarted   = "task_started"
	eventTaskCompleted = "task_completed"
	eventTaskSubmitted = "task_submitted"
)

// Options carries per-invocation inputs for a transition.
type Options struct {
	CommitMessage string
}

// Snapshot is the task state after a transition, plus whatever the
// transition learned from the remote (PR status for submit/review).
type Snapshot struct {
	Task     models.Task
	Column   string
	PRStatus PRStatus
	StepsRun []Step
}

// Orchestrator executes transition plans against the ports. It holds no
// task state across invocations; every Execute reloads the task fresh.
type Orchestrator struct {
	store      Storage
	git        VersionControl
	review     RemoteReview
	baseBranch string
}

// NewOrchestrator wires the three ports. baseBranch is the PR target.
func NewOrchestrator(st Storage, git VersionControl, review RemoteReview, baseBranch string) *Orchestrator {
	return &Orchestrator{store: st, git: git, review: review, baseBranch: baseBranch}
}

// Execute runs one transition. Steps run strictly in order; after each
// step with an externally observable effect the matching field update
// and activity entry are persisted before the next step starts, so the
// window where an effect exists but is unrecorded is a single step.
// Failures are never retried here; re-invoking the same transition
// resumes from the first unperformed step, with already confirmed work
// recognized and skipped.
func (o *Orchestrator) Execute(ctx context.Context, taskID int64, transition Transition, opts Options) (*Snapshot, error) {
	task, err := o.store.Task(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("%w: task #%d", ErrTaskNotFound, taskID)
	}

	column, err := o.store.ColumnByID(ctx, task.ColumnID)
	if err != nil {
		return nil, err
	}
	if column == nil {
		return nil, fmt.Errorf("task #%d references missing column %d", taskID, task.ColumnID)
	}

	plan, err := PlanFor(transition, column.Name)
	if err != nil {
		return nil, err
	}
	if err := checkPreconditions(task, transition); err != nil {
		return nil, err
	}

	snap := &Snapshot{}
	for _, step := range plan.Steps {
		if err := o.runStep(ctx, task, step, opts, snap); err != nil {
			return nil, &StepError{Transition: transition, Step: step, Err: err}
		}
		snap.StepsRun = append(snap.StepsRun, step)
	}

	if plan.Target != "" && column.Name != plan.Target {
		target, err := o.store.MustColumnByName(ctx, plan.Target)
		if err != nil {
			return nil, err
		}
		if err := o.store.UpdateTask(ctx, task.ID, store.TaskUpdate{ColumnID: &target.ID}); err != nil {
			return nil, err
		}
		task.ColumnID = target.ID
		column = target

		if err := o.store.AppendActivity(ctx, transitionEvent(transition), map[string]any{
			"task_id": task.ID,
			"title":   task.Title,
			"column":  target.Name,
		}); err != nil {
			return nil, err
		}
	}

	snap.Task = *task
	snap.Column = column.Name
	return snap, nil
}

// checkPreconditions rejects transitions whose required fields are
// missing before any step runs.
func checkPreconditions(task *models.Task, transition Transition) error {
	switch transition {
	case TransitionDone, TransitionSubmit:
		if task.BranchName == "" {
			return fmt.Errorf("%w: task #%d has no branch; run 'pb start %d' first", ErrPrecondition, task.ID, task.ID)
		}
	case TransitionReview:
		if task.PRUrl == "" {
			return fmt.Errorf("%w: task #%d has no pull request; run 'pb submit %d' first", ErrPrecondition, task.ID, task.ID)
		}
	}
	return nil
}

func (o *Orchestrator) runStep(ctx context.Context, task *models.Task, step Step, opts Options, snap *Snapshot) error {
	switch step {
	case StepCreateBranch:
		return o.stepCreateBranch(ctx, task)
	case StepCommit:
		return o.stepCommit(ctx, task, opts)
	case StepPush:
		return o.stepPush(ctx, task)
	case StepCreatePR:
		return o.stepCreatePR(ctx, task, snap)
	case StepPRStatus:
		return o.stepPRStatus(ctx, task, snap)
	}
	return fmt.Errorf("unknown step %q", step)
}

// stepCreateBranch creates and checks out the derived branch. A task
// that already has a branch recorded, or a branch left behind by a
// crashed earlier attempt, is checked out instead of recreated.
func (o *Orchestrator) stepCreateBranch(ctx context.Context, task *models.Task) error {
	if task.BranchName != "" {
		return o.git.CheckoutBranch(task.BranchName)
	}

	name := BranchName(task.ID, task.Title)
	exists, err := o.git.BranchExists(name)
	if err != nil {
		return err
	}
	if exists {
		if err := o.git.CheckoutBranch(name); err != nil {
			return err
		}
	} else {
		if err := o.git.CreateAndCheckoutBranch(name); err != nil {
			return err
		}
	}

	if err := o.store.UpdateTask(ctx, task.ID, store.TaskUpdate{BranchName: &name}); err != nil {
		return err
	}
	if err := o.store.AppendActivity(ctx, eventBranchCreated, map[string]any{
		"task_id": task.ID,
		"branch":  name,
		"reused":  exists,
	}); err != nil {
		return err
	}
	task.BranchName = name

	slog.Debug("branch ready", "task", task.ID, "branch", name, "reused", exists)
	return nil
}

// stepCommit commits staged changes. With nothing staged, a commit the
// activity log already records for this branch counts as done (the
// crash-and-resume case); otherwise ErrNothingToCommit is surfaced.
func (o *Orchestrator) stepCommit(ctx context.Context, task *models.Task, opts Options) error {
	staged, err := o.git.HasStagedChanges()
	if err != nil {
		return err
	}
	if !staged {
		committed, err := o.store.StepCompleted(ctx, task.ID, eventCommit, task.BranchName)
		if err != nil {
			return err
		}
		if committed {
			slog.Debug("commit already recorded, skipping", "task", task.ID, "branch", task.BranchName)
			return nil
		}
		return ErrNothingToCommit
	}

	message := opts.CommitMessage
	if message == "" {
		message = fmt.Sprintf("Closes #%d: %s", task.ID, task.Title)
	}
	commitID, err := o.git.Commit(message)
	if err != nil {
		return err
	}

	return o.store.AppendActivity(ctx, eventCommit, map[string]any{
		"task_id": task.ID,
		"branch":  task.BranchName,
		"commit":  commitID,
		"message": message,
	})
}

// stepPush pushes the task branch. Pushing an already pushed branch is
// naturally idempotent; the result is recorded either way.
func (o *Orchestrator) stepPush(ctx context.Context, task *models.Task) error {
	result, err := o.git.Push(ctx, task.BranchName)
	if err != nil {
		return err
	}
	return o.store.AppendActivity(ctx, eventPush, map[string]any{
		"task_id": task.ID,
		"branch":  task.BranchName,
		"result":  string(result),
	})
}

// stepCreatePR opens the pull request. A recorded pr_url means only a
// status refresh; an open PR for the branch that storage never recorded
// (crash between creation and persistence) is adopted, not duplicated.
func (o *Orchestrator) stepCreatePR(ctx context.Context, task *models.Task, snap *Snapshot) error {
	if task.PRUrl != "" {
		status, err := o.review.Status(ctx, task.PRUrl)
		if err != nil {
			return err
		}
		snap.PRStatus = status
		return nil
	}

	pr, err := o.review.FindOpenPR(ctx, task.BranchName)
	if err != nil {
		return err
	}
	reused := pr != nil
	if pr == nil {
		title := fmt.Sprintf("Task #%d: %s", task.ID, task.Title)
		created, err := o.review.CreatePR(ctx, task.BranchName, o.baseBranch, title, task.Description)
		if err != nil {
			return err
		}
		pr = &created
	}

	if err := o.store.UpdateTask(ctx, task.ID, store.TaskUpdate{PRUrl: &pr.URL}); err != nil {
		return err
	}
	if err := o.store.AppendActivity(ctx, eventPRCreated, map[string]any{
		"task_id": task.ID,
		"branch":  task.BranchName,
		"pr_url":  pr.URL,
		"number":  pr.Number,
		"reused":  reused,
	}); err != nil {
		return err
	}
	task.PRUrl = pr.URL
	snap.PRStatus = PROpen

	slog.Debug("pull request ready", "task", task.ID, "url", pr.URL, "reused", reused)
	return nil
}

// stepPRStatus polls the remote PR state. Read-only; nothing persisted.
func (o *Orchestrator) stepPRStatus(ctx context.Context, task *models.Task, snap *Snapshot) error {
	status, err := o.review.Status(ctx, task.PRUrl)
	if err != nil {
		return err
	}
	snap.PRStatus = status
	return nil
}

func transitionEvent(transition Transition) string {
	switch transition {
	case TransitionStart:
		return eventTaskStarted
	case TransitionDone:
		return eventTaskCompleted
	case TransitionSubmit:
		return eventTaskSubmitted
	}
	return string(transition)
}
