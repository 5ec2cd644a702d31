package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newActivityCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the activity log, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(func(env *boardEnv) error {
				return runActivity(cmd, env, limit)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "number of entries to show")

	return cmd
}

func runActivity(cmd *cobra.Command, env *boardEnv, limit int) error {
	entries, err := env.store.Activity(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		writePlain("No activity recorded yet.\n")
		return nil
	}

	for _, entry := range entries {
		line := entry.Event
		if detail := formatMetadata(entry.Metadata); detail != "" {
			line += " " + detail
		}
		writePlain("[%s] %s\n", entry.CreatedAt.Format("2006-01-02 15:04:05"), line)
	}
	return nil
}

// formatMetadata renders metadata as stable key=value pairs. JSON
// object order is not deterministic, so sort the keys.
func formatMetadata(metadata map[string]any) string {
	if len(metadata) == 0 {
		return ""
	}
	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, formatPair(key, metadata[key]))
	}
	return strings.Join(pairs, " ")
}

// formatPair renders one metadata value. Numbers arrive as float64
// from JSON decoding; whole values print without a fraction.
func formatPair(key string, value any) string {
	switch v := value.(type) {
	case string:
		if strings.ContainsAny(v, " \t") {
			return fmt.Sprintf("%s=%q", key, v)
		}
		return key + "=" + v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%s=%d", key, int64(v))
		}
		return fmt.Sprintf("%s=%g", key, v)
	default:
		return fmt.Sprintf("%s=%v", key, v)
	}
}
