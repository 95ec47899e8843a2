package git

import "time"

// RepositoryReader defines the query interface for reading branch history.
// Every call takes the branch as an explicit parameter; implementations must
// not mutate shared repository state (no checkout), so callers can query
// several branches in sequence without any restore bookkeeping.
type RepositoryReader interface {
	// Branches returns the short names of all local branches.
	Branches() ([]string, error)

	// CurrentBranch returns the short name of the branch HEAD points at.
	CurrentBranch() (string, error)

	// ListTags returns the tags whose target commit is reachable from the
	// branch head, sorted by creation date descending.
	ListTags(branch string) ([]TagInfo, error)

	// ListCommits returns the commits reachable from the branch head with a
	// committer date on or after since, newest-first.
	ListCommits(branch string, since time.Time) ([]CommitInfo, error)

	// IsAncestor reports whether the commit identified by sha is an ancestor
	// of (or equal to) the commit identified by ofSHA.
	IsAncestor(sha, ofSHA string) (bool, error)
}

// Compile-time interface conformance checks.
var (
	_ RepositoryReader = (*Repository)(nil)
	_ RepositoryReader = (*MockRepositoryReader)(nil)
)
