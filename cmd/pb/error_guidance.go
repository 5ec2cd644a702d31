package main

import (
	"errors"

	"github.com/adit-rah/project-board/internal/lifecycle"
)

func formatCLIError(err error) []string {
	if err == nil {
		return nil
	}

	lines := []string{err.Error()}

	var stepErr *lifecycle.StepError
	if errors.As(err, &stepErr) {
		lines = append(lines,
			"hint: completed steps are recorded; fix the cause and re-run the same command to resume.")
	}

	switch {
	case errors.Is(err, lifecycle.ErrAuthentication):
		lines = append(lines, "hint: set GITHUB_TOKEN to a token with repo access.")
	case errors.Is(err, lifecycle.ErrNothingToCommit):
		lines = append(lines, "hint: stage your changes with 'git add' before running 'pb done'.")
	case errors.Is(err, lifecycle.ErrRemoteGone):
		lines = append(lines, "hint: check that the git remote points at an existing GitHub repository.")
	case errors.Is(err, errNotInitialized):
		lines = lines[:1]
	}

	return uniqueLines(lines)
}

func uniqueLines(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out
}
