package main

import "testing"

func TestParseMarkdownFrontMatterAndItems(t *testing.T) {
	input := `---
column: todo
description: sprint 12 carryover
---
# Sprint backlog

- Fix login bug
* Harden session handling
- Write release notes
`
	frontMatter, items, err := parseMarkdown(input)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if frontMatter["column"] != "todo" {
		t.Fatalf("expected column front matter, got %v", frontMatter)
	}
	if frontMatter["description"] != "sprint 12 carryover" {
		t.Fatalf("expected description front matter, got %v", frontMatter)
	}
	want := []string{"Fix login bug", "Harden session handling", "Write release notes"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %v", len(want), items)
	}
	for i, item := range items {
		if item != want[i] {
			t.Fatalf("item %d = %q, want %q", i, item, want[i])
		}
	}
}

func TestParseMarkdownNoFrontMatter(t *testing.T) {
	frontMatter, items, err := parseMarkdown("- one\n- two\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(frontMatter) != 0 {
		t.Fatalf("expected empty front matter, got %v", frontMatter)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %v", items)
	}
}

func TestParseMarkdownUnclosedFrontMatter(t *testing.T) {
	_, _, err := parseMarkdown("---\ncolumn: todo\n- item\n")
	if err == nil {
		t.Fatal("expected error for unclosed front matter")
	}
}

func TestParseTaskID(t *testing.T) {
	for raw, want := range map[string]int64{"7": 7, "#7": 7, " 12 ": 12} {
		got, err := parseTaskID(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q = %d, want %d", raw, got, want)
		}
	}

	for _, raw := range []string{"", "abc", "0", "-3"} {
		if _, err := parseTaskID(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
