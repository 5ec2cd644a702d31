package main

import (
	"github.com/spf13/cobra"

	"github.com/adit-rah/project-board/internal/lifecycle"
)

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <id>",
		Short: "Start a task: create its feature branch and move it to Doing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(func(env *boardEnv) error {
				taskID, err := parseTaskID(args[0])
				if err != nil {
					return err
				}

				ctx, cancel := transitionContext(cmd)
				defer cancel()

				snap, err := env.orchestrator().Execute(ctx, taskID, lifecycle.TransitionStart, lifecycle.Options{})
				if err != nil {
					return err
				}

				writePlain("Started task #%d: %s\n", snap.Task.ID, snap.Task.Title)
				writePlain("  branch: %s\n", snap.Task.BranchName)
				writePlain("  column: %s\n", snap.Column)
				return nil
			})
		},
	}
}
