package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "pb",
		Short: "A terminal-first project board that wraps around git workflows",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			warning, err := configureLoggerForCLI(logLevel, configLogLevel())
			if err != nil {
				return err
			}
			if warning != "" {
				fmt.Fprintln(os.Stderr, warning)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Version = version
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newListCmd(),
		newMoveCmd(),
		newCommentCmd(),
		newCommentsCmd(),
		newIdeaCmd(),
		newIdeasCmd(),
		newPromoteCmd(),
		newStartCmd(),
		newDoneCmd(),
		newSubmitCmd(),
		newReviewCmd(),
		newBoardCmd(),
		newExportCmd(),
		newActivityCmd(),
	)

	return cmd
}
