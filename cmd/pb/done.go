package main

import (
	"github.com/spf13/cobra"

	"github.com/adit-rah/project-board/internal/lifecycle"
)

func newDoneCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Finish a task: commit staged changes, push, and move to Done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(func(env *boardEnv) error {
				taskID, err := parseTaskID(args[0])
				if err != nil {
					return err
				}

				ctx, cancel := transitionContext(cmd)
				defer cancel()

				opts := lifecycle.Options{CommitMessage: message}
				snap, err := env.orchestrator().Execute(ctx, taskID, lifecycle.TransitionDone, opts)
				if err != nil {
					return err
				}

				writePlain("Completed task #%d: %s\n", snap.Task.ID, snap.Task.Title)
				writePlain("  pushed: %s\n", snap.Task.BranchName)
				writePlain("  column: %s\n", snap.Column)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message (default: Closes #<id>: <title>)")

	return cmd
}
