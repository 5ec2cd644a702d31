package main

import (
	"fmt"
	"os"

	"github.com/adit-rah/project-board/internal/models"
)

func writePlain(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...)
}

// writeTaskLines prints one task as an indented block: title line plus
// any description, branch, and PR detail lines.
func writeTaskLines(task models.Task) {
	writePlain("  #%d: %s\n", task.ID, task.Title)
	if task.Description != "" {
		writePlain("      %s\n", task.Description)
	}
	if task.BranchName != "" {
		writePlain("      branch: %s\n", task.BranchName)
	}
	if task.PRUrl != "" {
		writePlain("      pr: %s\n", task.PRUrl)
	}
}
