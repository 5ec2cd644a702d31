package main

import (
	"github.com/spf13/cobra"

	"github.com/adit-rah/project-board/internal/models"
)

func newListCmd() *cobra.Command {
	var columnFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, grouped by column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(func(env *boardEnv) error {
				return runList(cmd, env, columnFilter)
			})
		},
	}

	cmd.Flags().StringVarP(&columnFilter, "column", "c", "", "only show tasks in this column")

	return cmd
}

func runList(cmd *cobra.Command, env *boardEnv, columnFilter string) error {
	ctx := cmd.Context()

	columns, err := env.store.Columns(ctx)
	if err != nil {
		return err
	}
	if columnFilter != "" {
		name, err := models.NormalizeColumnName(columnFilter)
		if err != nil {
			return err
		}
		column, err := env.store.MustColumnByName(ctx, name)
		if err != nil {
			return err
		}
		columns = []models.Column{*column}
	}

	for i, column := range columns {
		tasks, err := env.store.Tasks(ctx, &column.ID)
		if err != nil {
			return err
		}
		if i > 0 {
			writePlain("\n")
		}
		writePlain("%s (%d tasks)\n", column.Name, len(tasks))
		if len(tasks) == 0 {
			writePlain("  (no tasks)\n")
			continue
		}
		for _, task := range tasks {
			writeTaskLines(task)
		}
	}
	return nil
}
