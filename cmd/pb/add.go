package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adit-rah/project-board/internal/models"
	"github.com/adit-rah/project-board/internal/store"
)

func newAddCmd() *cobra.Command {
	var description string
	var filePath string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to the Backlog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(func(env *boardEnv) error {
				if filePath != "" {
					return runAddFromFile(cmd, env, filePath)
				}
				if len(args) == 0 {
					return errors.New("title is required")
				}
				return runAdd(cmd, env, strings.Join(args, " "), description)
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "markdown file for batch add")

	return cmd
}

func runAdd(cmd *cobra.Command, env *boardEnv, title, description string) error {
	ctx := cmd.Context()
	backlog, err := env.store.MustColumnByName(ctx, models.ColumnBacklog)
	if err != nil {
		return err
	}

	task, err := env.store.CreateTask(ctx, title, description, backlog.ID)
	if err != nil {
		return err
	}
	if err := env.store.AppendActivity(ctx, "task_created", map[string]any{
		"task_id": task.ID,
		"title":   task.Title,
	}); err != nil {
		return err
	}

	writePlain("Created task #%d: %s\n", task.ID, task.Title)
	if task.Description != "" {
		writePlain("  description: %s\n", task.Description)
	}
	writePlain("  column: %s\n", backlog.Name)
	return nil
}

func runAddFromFile(cmd *cobra.Command, env *boardEnv, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	frontMatter, items, err := parseMarkdown(string(data))
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no list items found in %s", filePath)
	}

	ctx := cmd.Context()
	columnName := models.ColumnBacklog
	if value, ok := frontMatter["column"].(string); ok {
		columnName, err = models.NormalizeColumnName(value)
		if err != nil {
			return err
		}
	}
	description, _ := frontMatter["description"].(string)
	assignee, _ := frontMatter["assignee"].(string)

	column, err := env.store.MustColumnByName(ctx, columnName)
	if err != nil {
		return err
	}

	for _, title := range items {
		task, err := env.store.CreateTask(ctx, title, description, column.ID)
		if err != nil {
			return err
		}
		if assignee != "" {
			if err := env.store.UpdateTask(ctx, task.ID, store.TaskUpdate{Assignee: &assignee}); err != nil {
				return err
			}
		}
		if err := env.store.AppendActivity(ctx, "task_created", map[string]any{
			"task_id": task.ID,
			"title":   task.Title,
		}); err != nil {
			return err
		}
		writePlain("Created task #%d: %s\n", task.ID, task.Title)
	}
	writePlain("Added %d tasks to %s\n", len(items), column.Name)
	return nil
}
