package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adit-rah/project-board/internal/models"
	"github.com/adit-rah/project-board/internal/store"
)

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <column>",
		Short: "Move a task to another column",
		Long: "Move a task to another column without touching its branch or PR. " +
			"Use start, done, and submit for moves that should drive the git workflow.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(func(env *boardEnv) error {
				return runMove(cmd, env, args[0], args[1])
			})
		},
	}
}

func runMove(cmd *cobra.Command, env *boardEnv, rawID, rawColumn string) error {
	ctx := cmd.Context()

	taskID, err := parseTaskID(rawID)
	if err != nil {
		return err
	}
	task, err := env.store.Task(ctx, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return fmt.Errorf("task #%d not found", taskID)
	}

	name, err := models.NormalizeColumnName(rawColumn)
	if err != nil {
		return err
	}
	target, err := env.store.MustColumnByName(ctx, name)
	if err != nil {
		return err
	}
	current, err := env.store.ColumnByID(ctx, task.ColumnID)
	if err != nil {
		return err
	}

	if err := env.store.UpdateTask(ctx, task.ID, store.TaskUpdate{ColumnID: &target.ID}); err != nil {
		return err
	}
	if err := env.store.AppendActivity(ctx, "task_moved", map[string]any{
		"task_id": task.ID,
		"from":    current.Name,
		"to":      target.Name,
	}); err != nil {
		return err
	}

	writePlain("Moved task #%d: %s -> %s\n", task.ID, current.Name, target.Name)
	writePlain("  %s\n", task.Title)
	return nil
}
