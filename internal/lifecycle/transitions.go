package lifecycle

import (
	"fmt"

	"github.com/adit-rah/project-board/internal/models"
)

// Transition is a named lifecycle operation.
type Transition string

const (
	TransitionStart  Transition = "start"
	TransitionDone   Transition = "done"
	TransitionSubmit Transition = "submit"
	TransitionReview Transition = "review"
)

// Step is one externally observable action within a transition.
type Step string

const (
	StepCreateBranch Step = "create_branch"
	StepCommit       Step = "commit"
	StepPush         Step = "push"
	StepCreatePR     Step = "create_pr"
	StepPRStatus     Step = "pr_status"
)

// Plan is the ordered work for one transition: the steps to run and the
// column the task lands in on success ("" means no column change).
type Plan struct {
	Transition Transition
	Steps      []Step
	Target     string
}

// transitionRule drives the state machine. An empty from list accepts
// any source column.
type transitionRule struct {
	from   []string
	steps  []Step
	target string
}

var transitionRules = map[Transition]transitionRule{
	TransitionStart: {
		// Doing is legal too so a crashed or repeated start can resume;
		// the branch step recognizes existing work instead of redoing it.
		from:   []string{models.ColumnBacklog, models.ColumnToDo, models.ColumnDoing},
		steps:  []Step{StepCreateBranch},
		target: models.ColumnDoing,
	},
	TransitionDone: {
		from:   []string{models.ColumnDoing},
		steps:  []Step{StepCommit, StepPush},
		target: models.ColumnDone,
	},
	TransitionSubmit: {
		// Review is legal for the same reason: resubmitting refreshes
		// the PR status instead of opening a duplicate.
		from:   []string{models.ColumnDoing, models.ColumnDone, models.ColumnReview},
		steps:  []Step{StepPush, StepCreatePR},
		target: models.ColumnReview,
	},
	TransitionReview: {
		from:   nil, // legal from any column; gated on pr_url instead
		steps:  []Step{StepPRStatus},
		target: "",
	},
}

// PlanFor computes the ordered steps for a transition given the task's
// current column. Pure decision logic; no side effects.
func PlanFor(transition Transition, currentColumn string) (Plan, error) {
	rule, ok := transitionRules[transition]
	if !ok {
		return Plan{}, fmt.Errorf("%w: unknown transition %q", ErrInvalidTransition, transition)
	}

	if len(rule.from) > 0 {
		legal := false
		for _, name := range rule.from {
			if name == currentColumn {
				legal = true
				break
			}
		}
		if !legal {
			return Plan{}, fmt.Errorf("%w: cannot %s a task in %s", ErrInvalidTransition, transition, currentColumn)
		}
	}

	return Plan{
		Transition: transition,
		Steps:      append([]Step(nil), rule.steps...),
		Target:     rule.target,
	}, nil
}
