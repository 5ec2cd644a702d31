package lifecycle

import (
	"strings"
	"testing"
)

func TestBranchName(t *testing.T) {
	cases := []struct {
		id    int64
		title string
		want  string
	}{
		{1, "Fix login bug", "feature/1-fix-login-bug"},
		{42, "Add dark mode", "feature/42-add-dark-mode"},
		{7, "  Weird -- punctuation!! everywhere?  ", "feature/7-weird-punctuation-everywhere"},
		{3, "CAPS and 123 numbers", "feature/3-caps-and-123-numbers"},
		{9, "émoji ünicode", "feature/9-moji-nicode"},
	}
	for _, tc := range cases {
		if got := BranchName(tc.id, tc.title); got != tc.want {
			t.Fatalf("BranchName(%d, %q) = %q, want %q", tc.id, tc.title, got, tc.want)
		}
	}
}

func TestBranchNameDeterministic(t *testing.T) {
	a := BranchName(5, "Some Task Title")
	b := BranchName(5, "Some Task Title")
	if a != b {
		t.Fatalf("branch derivation must be pure: %q != %q", a, b)
	}
}

func TestBranchNameBounded(t *testing.T) {
	long := strings.Repeat("very long title ", 20)
	name := BranchName(1, long)
	slug := strings.TrimPrefix(name, "feature/1-")
	if len(slug) > slugMaxLength {
		t.Fatalf("slug too long: %d bytes (%q)", len(slug), slug)
	}
	if strings.HasSuffix(slug, "-") {
		t.Fatalf("slug has trailing hyphen: %q", slug)
	}
}
