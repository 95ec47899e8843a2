package git

import (
	"regexp"
	"strings"
)

// CategoryOther is the fallback category for commit messages that do not
// follow the conventional-commit form.
const CategoryOther = "Other"

// Matches "type: subject" and "type(scope): subject". Classification is
// best-effort: anything else falls through to CategoryOther.
var conventionalRe = regexp.MustCompile(`^([a-z]+)(?:\([^)]*\))?:\s+.+`)

// Categorize derives a display category from a commit subject line.
// "feat(auth): add login" yields "Feat"; "tidy up whitespace" yields "Other".
func Categorize(message string) string {
	m := conventionalRe.FindStringSubmatch(message)
	if m == nil {
		return CategoryOther
	}
	word := m[1]
	return strings.ToUpper(word[:1]) + word[1:]
}
