package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/adit-rah/project-board/internal/export"
)

func newExportCmd() *cobra.Command {
	var asCSV bool
	var asMarkdown bool
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the board as CSV or Markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asCSV && asMarkdown {
				return errors.New("choose one of --csv or --markdown")
			}
			return withBoard(func(env *boardEnv) error {
				if !asCSV && !asMarkdown {
					switch env.cfg.ExportFormat {
					case "markdown":
						asMarkdown = true
					case "", "csv":
					default:
						return fmt.Errorf("unknown export_format %q in config", env.cfg.ExportFormat)
					}
				}
				w := io.Writer(os.Stdout)
				if outputPath != "" {
					f, err := os.Create(outputPath)
					if err != nil {
						return err
					}
					defer f.Close()
					w = f
				}
				return runExport(cmd, env, asMarkdown, w)
			})
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "export as CSV (default)")
	cmd.Flags().BoolVar(&asMarkdown, "markdown", false, "export as Markdown")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, env *boardEnv, asMarkdown bool, w io.Writer) error {
	ctx := cmd.Context()

	columns, err := env.store.Columns(ctx)
	if err != nil {
		return err
	}
	tasks, err := env.store.Tasks(ctx, nil)
	if err != nil {
		return err
	}

	if asMarkdown {
		return export.WriteMarkdown(w, columns, tasks)
	}
	return export.WriteCSV(w, columns, tasks)
}
