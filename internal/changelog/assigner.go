package changelog

import (
	"time"

	"github.com/masmgr/changelog-go/internal/git"
)

// AncestryChecker answers commit ancestry queries. *git.Repository and
// *git.MockRepositoryReader both satisfy it.
type AncestryChecker interface {
	IsAncestor(sha, ofSHA string) (bool, error)
}

// AssignVersions associates each commit with the release version that
// contains it. Tags must be ordered newest-creation-first and commits
// newest-first, as produced by the reader.
//
// The walk keeps a cursor into the tag list, starting at the newest tag.
// For each commit it advances the cursor while the commit is an ancestor of
// the next (older) tag's target, then assigns the cursor's version. The
// cursor never rewinds, so one forward pass partitions the history into
// tag-bounded segments with O(commits + tag-transitions) ancestry queries.
//
// Commits newer than the newest tag are folded into that tag's version;
// they are not distinguished as unreleased. A branch with no tags assigns
// every commit the "latest" sentinel, dated now.
func AssignVersions(anc AncestryChecker, branch string, tags []git.TagInfo, commits []git.CommitInfo, now time.Time) ([]VersionedCommit, error) {
	version := VersionLatest
	versionDate := now
	idx := 0
	if len(tags) > 0 {
		version = tags[0].Version
		versionDate = tags[0].When
	}

	out := make([]VersionedCommit, 0, len(commits))
	for _, commit := range commits {
		for idx < len(tags)-1 {
			contained, err := anc.IsAncestor(commit.SHA, tags[idx+1].SHA)
			if err != nil {
				return nil, err
			}
			if !contained {
				break
			}
			idx++
			version = tags[idx].Version
			versionDate = tags[idx].When
		}

		out = append(out, VersionedCommit{
			CommitInfo:  commit,
			Branch:      branch,
			Version:     version,
			VersionDate: versionDate,
		})
	}

	return out, nil
}
