package main

import (
	"github.com/spf13/cobra"

	"github.com/adit-rah/project-board/internal/lifecycle"
)

func newSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <id>",
		Short: "Submit a task for review: push the branch and open a pull request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(func(env *boardEnv) error {
				taskID, err := parseTaskID(args[0])
				if err != nil {
					return err
				}

				ctx, cancel := transitionContext(cmd)
				defer cancel()

				snap, err := env.orchestrator().Execute(ctx, taskID, lifecycle.TransitionSubmit, lifecycle.Options{})
				if err != nil {
					return err
				}

				writePlain("Submitted task #%d for review: %s\n", snap.Task.ID, snap.Task.Title)
				writePlain("  pr: %s\n", snap.Task.PRUrl)
				writePlain("  column: %s\n", snap.Column)
				return nil
			})
		},
	}
}
