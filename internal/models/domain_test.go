package models

import "testing"

func TestNormalizeColumnName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"backlog", ColumnBacklog},
		{"Backlog", ColumnBacklog},
		{"todo", ColumnToDo},
		{"to do", ColumnToDo},
		{"DOING", ColumnDoing},
		{" review ", ColumnReview},
		{"done", ColumnDone},
	}
	for _, tc := range cases {
		got, err := NormalizeColumnName(tc.in)
		if err != nil {
			t.Fatalf("normalize %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("normalize %q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestNormalizeColumnNameRejectsUnknown(t *testing.T) {
	if _, err := NormalizeColumnName("archive"); err == nil {
		t.Fatal("expected error for unknown column")
	}
	if _, err := NormalizeColumnName(""); err == nil {
		t.Fatal("expected error for empty column")
	}
}

func TestDefaultColumnsOrder(t *testing.T) {
	cols := DefaultColumns()
	if len(cols) != 5 {
		t.Fatalf("expected 5 columns, got %d", len(cols))
	}
	for i, col := range cols {
		if col.Position != i {
			t.Fatalf("column %s: expected position %d, got %d", col.Name, i, col.Position)
		}
	}
	if cols[0].Name != ColumnBacklog || cols[4].Name != ColumnDone {
		t.Fatalf("unexpected column order: %+v", cols)
	}
}
