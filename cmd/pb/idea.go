package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newIdeaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "idea <content>",
		Short: "Capture a free-form idea",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(func(env *boardEnv) error {
				return runIdea(cmd, env, strings.Join(args, " "))
			})
		},
	}
}

func runIdea(cmd *cobra.Command, env *boardEnv, content string) error {
	ctx := cmd.Context()

	idea, err := env.store.CreateIdea(ctx, content)
	if err != nil {
		return err
	}
	if err := env.store.AppendActivity(ctx, "idea_created", map[string]any{
		"idea_id": idea.ID,
		"content": idea.Content,
	}); err != nil {
		return err
	}

	writePlain("Created idea #%d: %s\n", idea.ID, idea.Content)
	return nil
}

func newIdeasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ideas",
		Short: "List ideas, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(func(env *boardEnv) error {
				return runIdeas(cmd, env)
			})
		},
	}
}

func runIdeas(cmd *cobra.Command, env *boardEnv) error {
	ideas, err := env.store.Ideas(cmd.Context())
	if err != nil {
		return err
	}
	if len(ideas) == 0 {
		writePlain("No ideas yet. Capture one with 'pb idea \"...\"'\n")
		return nil
	}
	for _, idea := range ideas {
		if idea.PromotedTaskID != nil {
			writePlain("#%d: %s (promoted to task #%d)\n", idea.ID, idea.Content, *idea.PromotedTaskID)
		} else {
			writePlain("#%d: %s\n", idea.ID, idea.Content)
		}
	}
	return nil
}
