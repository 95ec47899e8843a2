package git

import "time"

// MockRepositoryReader is a test double for RepositoryReader.
// It serves predefined per-branch tag and commit data without needing a
// real Git repository, and answers ancestry queries from an explicit map.
type MockRepositoryReader struct {
	BranchNames []string
	Current     string
	Tags        map[string][]TagInfo
	Commits     map[string][]CommitInfo

	// Ancestors maps a commit SHA to the set of SHAs it is an ancestor of.
	// A commit is always treated as an ancestor of itself.
	Ancestors map[string]map[string]bool

	// Per-branch errors returned by ListTags / ListCommits.
	TagErrs    map[string]error
	CommitErrs map[string]error

	// AncestryErr, when set, is returned by every IsAncestor call.
	AncestryErr error

	// AncestryCalls counts IsAncestor invocations, for cursor-walk assertions.
	AncestryCalls int
}

// Branches returns the predefined branch names.
func (m *MockRepositoryReader) Branches() ([]string, error) {
	return m.BranchNames, nil
}

// CurrentBranch returns the predefined current branch.
func (m *MockRepositoryReader) CurrentBranch() (string, error) {
	return m.Current, nil
}

// ListTags returns the predefined tags (or error) for the branch.
func (m *MockRepositoryReader) ListTags(branch string) ([]TagInfo, error) {
	if err := m.TagErrs[branch]; err != nil {
		return nil, err
	}
	return m.Tags[branch], nil
}

// ListCommits returns the predefined commits (or error) for the branch.
func (m *MockRepositoryReader) ListCommits(branch string, _ time.Time) ([]CommitInfo, error) {
	if err := m.CommitErrs[branch]; err != nil {
		return nil, err
	}
	return m.Commits[branch], nil
}

// IsAncestor answers from the Ancestors map.
func (m *MockRepositoryReader) IsAncestor(sha, ofSHA string) (bool, error) {
	m.AncestryCalls++
	if m.AncestryErr != nil {
		return false, m.AncestryErr
	}
	if sha == ofSHA {
		return true, nil
	}
	return m.Ancestors[sha][ofSHA], nil
}
