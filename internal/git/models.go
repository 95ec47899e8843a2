package git

import "time"

// ShortSHALength is the length of the display prefix used for commit identifiers.
const ShortSHALength = 7

// TagInfo represents a release tag reachable from a branch.
type TagInfo struct {
	Name    string
	Version string // "major.minor.patch", or "unknown" when the name does not parse
	SHA     string
	When    time.Time // tagger date for annotated tags, target commit date otherwise
}

// CommitInfo represents minimal information about a Git commit.
type CommitInfo struct {
	SHA      string
	ShortSHA string // display-only prefix of SHA
	When     time.Time
	Message  string // subject line only
	Category string // conventional-commit derived category
}

// ReadOptions configures the repository reader.
type ReadOptions struct {
	RepoPath string
}
