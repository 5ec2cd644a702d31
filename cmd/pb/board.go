package main

import (
	"github.com/spf13/cobra"

	"github.com/adit-rah/project-board/internal/board"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(func(env *boardEnv) error {
				return board.Run(board.StoreLoader(env.store))
			})
		},
	}
}
