package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment <id> <text>",
		Short: "Add a comment to a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(func(env *boardEnv) error {
				return runComment(cmd, env, args[0], strings.Join(args[1:], " "))
			})
		},
	}
}

func runComment(cmd *cobra.Command, env *boardEnv, rawID, text string) error {
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

	author := env.commentAuthor()
	comment, err := env.store.CreateComment(ctx, task.ID, author, text)
	if err != nil {
		return err
	}
	if err := env.store.AppendActivity(ctx, "comment_added", map[string]any{
		"task_id": task.ID,
		"author":  comment.Author,
	}); err != nil {
		return err
	}

	writePlain("Added comment to task #%d: %s\n", task.ID, task.Title)
	writePlain("  %s: %s\n", comment.Author, comment.Text)
	return nil
}

func newCommentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comments <id>",
		Short: "Show the comments on a task, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(func(env *boardEnv) error {
				return runComments(cmd, env, args[0])
			})
		},
	}
}

func runComments(cmd *cobra.Command, env *boardEnv, rawID string) error {
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

	comments, err := env.store.Comments(ctx, task.ID)
	if err != nil {
		return err
	}

	writePlain("Task #%d: %s (%d comments)\n", task.ID, task.Title, len(comments))
	for _, comment := range comments {
		writePlain("  [%s] %s: %s\n", comment.CreatedAt.Format("2006-01-02 15:04"), comment.Author, comment.Text)
	}
	return nil
}
