package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/adit-rah/project-board/internal/config"
	"github.com/adit-rah/project-board/internal/gitrepo"
	"github.com/adit-rah/project-board/internal/store"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a project board in the current git repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd)
		},
	}
}

func runInit(cmd *cobra.Command) error {
	root, err := gitrepo.DiscoverRoot(".")
	if err != nil {
		return err
	}

	boardDir := config.BoardDir(root)
	if _, err := os.Stat(boardDir); err == nil {
		return fmt.Errorf("ProjectBoard already initialized in this repository")
	}
	if err := os.MkdirAll(boardDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", boardDir, err)
	}

	dbPath := config.DBPath(root)
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	columns, err := st.SeedDefaultColumns(ctx)
	if err != nil {
		return err
	}

	name := filepath.Base(root)
	project, err := st.CreateProject(ctx, name, root)
	if err != nil {
		return err
	}

	if err := st.AppendActivity(ctx, "project_initialized", map[string]any{
		"project": project.Name,
		"path":    root,
	}); err != nil {
		return err
	}

	writePlain("Initialized ProjectBoard for %s\n", project.Name)
	writePlain("Created default columns:\n")
	for _, column := range columns {
		writePlain("  - %s\n", column.Name)
	}
	writePlain("Database: %s\n", dbPath)
	writePlain("Use 'pb add \"Task title\"' to create your first task\n")
	return nil
}
