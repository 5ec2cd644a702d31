package export

import (
	"strings"
	"testing"
	"time"

	"github.com/adit-rah/project-board/internal/models"
)

func sampleBoard() ([]models.Column, []models.Task) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	columns := []models.Column{
		{ID: 1, Name: models.ColumnBacklog, Position: 0},
		{ID: 2, Name: models.ColumnDoing, Position: 2},
	}
	tasks := []models.Task{
		{ID: 1, Title: "Fix login bug", Description: "Session expiry, see #88", ColumnID: 2,
			BranchName: "feature/1-fix-login-bug", PRUrl: "https://github.com/acme/demo/pull/7",
			CreatedAt: created, UpdatedAt: created.Add(time.Hour)},
		{ID: 2, Title: "Write docs", ColumnID: 1, CreatedAt: created, UpdatedAt: created},
	}
	return columns, tasks
}

func TestWriteCSV(t *testing.T) {
	columns, tasks := sampleBoard()
	var buf strings.Builder
	if err := WriteCSV(&buf, columns, tasks); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "ID,Title,Description,Column,Created,Updated,Branch,PR" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if want := `1,Fix login bug,"Session expiry, see #88",Doing,2026-03-14 09:30:00,2026-03-14 10:30:00,feature/1-fix-login-bug,https://github.com/acme/demo/pull/7`; lines[1] != want {
		t.Fatalf("row 1 = %q, want %q", lines[1], want)
	}
	if !strings.HasSuffix(lines[2], "Backlog,2026-03-14 09:30:00,2026-03-14 09:30:00,,") {
		t.Fatalf("row 2 should have empty branch and PR: %q", lines[2])
	}
}

func TestWriteCSVQuotesEmbeddedQuotes(t *testing.T) {
	columns := []models.Column{{ID: 1, Name: models.ColumnBacklog}}
	tasks := []models.Task{{ID: 3, Title: `Rename "old" flag`, ColumnID: 1}}
	var buf strings.Builder
	if err := WriteCSV(&buf, columns, tasks); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !strings.Contains(buf.String(), `"Rename ""old"" flag"`) {
		t.Fatalf("quotes not escaped: %q", buf.String())
	}
}

func TestWriteCSVUnknownColumn(t *testing.T) {
	tasks := []models.Task{{ID: 9, Title: "Orphan", ColumnID: 999}}
	var buf strings.Builder
	if err := WriteCSV(&buf, nil, tasks); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !strings.Contains(buf.String(), ",Unknown,") {
		t.Fatalf("expected Unknown column marker: %q", buf.String())
	}
}

func TestWriteMarkdown(t *testing.T) {
	columns, tasks := sampleBoard()
	var buf strings.Builder
	if err := WriteMarkdown(&buf, columns, tasks); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# ProjectBoard Export\n",
		"## Backlog (1)\n",
		"## Doing (1)\n",
		"- **#1**: Fix login bug\n",
		"  - Session expiry, see #88\n",
		"  - Branch: `feature/1-fix-login-bug`\n",
		"  - PR: https://github.com/acme/demo/pull/7\n",
		"- **#2**: Write docs\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
	// Backlog comes before Doing, matching board order.
	if strings.Index(out, "## Backlog") > strings.Index(out, "## Doing") {
		t.Fatalf("columns out of order:\n%s", out)
	}
}

func TestWriteMarkdownEmptyColumn(t *testing.T) {
	columns := []models.Column{{ID: 1, Name: models.ColumnDone}}
	var buf strings.Builder
	if err := WriteMarkdown(&buf, columns, nil); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	if !strings.Contains(buf.String(), "## Done (0)") {
		t.Fatalf("empty column should still render: %q", buf.String())
	}
}
