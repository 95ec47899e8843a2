package changelog

import (
	"time"

	"github.com/masmgr/changelog-go/internal/git"
)

// VersionLatest is the sentinel version assigned to every commit on a
// branch that has no release tags at all.
const VersionLatest = "latest"

// VersionedCommit is a commit enriched with the release that contains it.
// This is the unit that flows into aggregation.
type VersionedCommit struct {
	git.CommitInfo

	Branch      string
	Version     string
	VersionDate time.Time
}
