package lifecycle

import (
	"fmt"
	"strings"
)

const (
	branchPrefix  = "feature/"
	slugMaxLength = 40
)

// BranchName derives the work branch for a task. The function is pure:
// re-running a transition after a crash recomputes the same name, which
// is what lets branch creation be reconciled instead of repeated.
func BranchName(taskID int64, title string) string {
	return fmt.Sprintf("%s%d-%s", branchPrefix, taskID, slugify(title))
}

// slugify lowercases the title, collapses every run of non-alphanumeric
// characters into a single hyphen, and bounds the result.
func slugify(title string) string {
	var b strings.Builder
	prevHyphen := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevHyphen = false
		} else if !prevHyphen && b.Len() > 0 {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if len(slug) > slugMaxLength {
		slug = strings.TrimRight(slug[:slugMaxLength], "-")
	}
	return slug
}
