package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adit-rah/project-board/internal/models"
)

func newPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <idea-id>",
		Short: "Turn an idea into a Backlog task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(func(env *boardEnv) error {
				return runPromote(cmd, env, args[0])
			})
		},
	}
}

// runPromote creates a Backlog task from an idea. The idea stays in
// the list with a pointer at the task, so promotion keeps history and
// repeating it is rejected rather than duplicating the task.
func runPromote(cmd *cobra.Command, env *boardEnv, rawID string) error {
	ctx := cmd.Context()

	ideaID, err := parseIdeaID(rawID)
	if err != nil {
		return err
	}
	idea, err := env.store.Idea(ctx, ideaID)
	if err != nil {
		return err
	}
	if idea == nil {
		return fmt.Errorf("idea #%d not found", ideaID)
	}
	if idea.PromotedTaskID != nil {
		return fmt.Errorf("idea #%d was already promoted to task #%d", idea.ID, *idea.PromotedTaskID)
	}

	backlog, err := env.store.MustColumnByName(ctx, models.ColumnBacklog)
	if err != nil {
		return err
	}
	task, err := env.store.CreateTask(ctx, idea.Content, "", backlog.ID)
	if err != nil {
		return err
	}
	if err := env.store.MarkIdeaPromoted(ctx, idea.ID, task.ID); err != nil {
		return err
	}
	if err := env.store.AppendActivity(ctx, "idea_promoted", map[string]any{
		"idea_id": idea.ID,
		"task_id": task.ID,
		"title":   task.Title,
	}); err != nil {
		return err
	}

	writePlain("Promoted idea #%d to task #%d: %s\n", idea.ID, task.ID, task.Title)
	return nil
}
