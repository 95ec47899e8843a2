package changelog

import (
	"fmt"
	"os"
	"time"

	"github.com/masmgr/changelog-go/internal/git"
)

// Pipeline extracts and version-assigns commits for a set of branches.
// Branches are processed strictly in order, one at a time.
type Pipeline struct {
	Reader     git.RepositoryReader
	Branches   []string
	WindowDays int

	// Now supplies the clock used for the trailing window and the
	// zero-tag sentinel date. Defaults to time.Now.
	Now func() time.Time

	// Warnf receives per-branch extraction failures. Defaults to stderr.
	Warnf func(format string, args ...interface{})
}

// Run walks every configured branch and returns the concatenated
// version-assigned commits, in branch order.
//
// Extraction failures (unknown branch, repository errors) degrade that
// branch to zero commits and the run continues. Assignment failures abort
// the whole run: a broken ancestry query means any output would be wrong.
func (p *Pipeline) Run() ([]VersionedCommit, error) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	warnf := p.Warnf
	if warnf == nil {
		warnf = func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}

	since := now().AddDate(0, 0, -p.WindowDays)

	var all []VersionedCommit
	for _, branch := range p.Branches {
		tags, err := p.Reader.ListTags(branch)
		if err != nil {
			warnf("skipping branch %s: %v", branch, err)
			continue
		}

		commits, err := p.Reader.ListCommits(branch, since)
		if err != nil {
			warnf("skipping branch %s: %v", branch, err)
			continue
		}

		assigned, err := AssignVersions(p.Reader, branch, tags, commits, now())
		if err != nil {
			return nil, fmt.Errorf("assign versions on %s: %w", branch, err)
		}

		all = append(all, assigned...)
	}

	return all, nil
}
