package git

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandBranchPatterns resolves configured branch entries against the
// repository's branch list. Entries containing glob metacharacters are
// expanded with doublestar (so "release/*" selects every release branch);
// literal names pass through unchanged even when no such branch exists, so
// that a missing branch surfaces as a per-branch warning later instead of
// silently disappearing from the report.
func ExpandBranchPatterns(patterns, available []string) []string {
	seen := make(map[string]struct{})
	var expanded []string

	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		expanded = append(expanded, name)
	}

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		if !strings.ContainsAny(pattern, "*?[{") {
			add(pattern)
			continue
		}

		for _, name := range available {
			if matched, err := doublestar.Match(pattern, name); err == nil && matched {
				add(name)
			}
		}
	}

	return expanded
}
