package main

import (
	"github.com/spf13/cobra"

	"github.com/adit-rah/project-board/internal/lifecycle"
)

func newReviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review <id>",
		Short: "Check the pull request status of a submitted task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(func(env *boardEnv) error {
				taskID, err := parseTaskID(args[0])
				if err != nil {
					return err
				}

				ctx, cancel := transitionContext(cmd)
				defer cancel()

				snap, err := env.orchestrator().Execute(ctx, taskID, lifecycle.TransitionReview, lifecycle.Options{})
				if err != nil {
					return err
				}

				writePlain("Task #%d: %s\n", snap.Task.ID, snap.Task.Title)
				writePlain("  pr: %s\n", snap.Task.PRUrl)
				writePlain("  status: %s\n", snap.PRStatus)
				return nil
			})
		},
	}
}
