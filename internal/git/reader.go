package git

import (
	"fmt"
	"sort"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/masmgr/changelog-go/internal/semver"
)

// Repository reads branch history from a Git repository using go-git
// plumbing. All queries are scoped by an explicit branch reference, so no
// call ever touches the worktree or the checked-out branch.
type Repository struct {
	repo *gogit.Repository
}

// NewRepository opens the repository at the given path.
func NewRepository(opts ReadOptions) (*Repository, error) {
	repo, err := gogit.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("open repository %q: %w", opts.RepoPath, err)
	}
	return &Repository{repo: repo}, nil
}

// Branches returns the short names of all local branches.
func (r *Repository) Branches() ([]string, error) {
	iter, err := r.repo.Branches()
	if err != nil {
		return nil, err
	}

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}

// CurrentBranch returns the short name of the branch HEAD points at.
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", err
	}
	return head.Name().Short(), nil
}

// ListTags returns the tags merged into the branch, sorted by creation date
// descending. The version field is parsed from the tag name; names that do
// not parse as v<major>.<minor>.<patch> get the "unknown" sentinel.
func (r *Repository) ListTags(branch string) ([]TagInfo, error) {
	head, err := r.branchCommit(branch)
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Tags()
	if err != nil {
		return nil, err
	}

	var tags []TagInfo
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		var tagged *time.Time

		// Annotated tags carry their own object with a tagger date; the ref
		// hash then points at the tag object, not the commit.
		if tagObj, err := r.repo.TagObject(ref.Hash()); err == nil {
			target = tagObj.Target
			when := tagObj.Tagger.When
			tagged = &when
		}

		commit, err := r.repo.CommitObject(target)
		if err != nil {
			// Tag of a non-commit object (tree, blob); not a release marker.
			return nil
		}

		merged, err := isReachable(commit, head)
		if err != nil {
			return err
		}
		if !merged {
			return nil
		}

		when := commit.Committer.When
		if tagged != nil {
			when = *tagged
		}

		name := ref.Name().Short()
		tags = append(tags, TagInfo{
			Name:    name,
			Version: semver.FromTag(name),
			SHA:     commit.Hash.String(),
			When:    when,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(tags, func(i, j int) bool {
		if !tags[i].When.Equal(tags[j].When) {
			return tags[i].When.After(tags[j].When)
		}
		return tags[i].Name < tags[j].Name
	})

	return tags, nil
}

// ListCommits returns the commits on the branch with a committer date on or
// after since, newest-first. The message is the subject line only and the
// category is derived from it.
func (r *Repository) ListCommits(branch string, since time.Time) ([]CommitInfo, error) {
	head, err := r.branchCommit(branch)
	if err != nil {
		return nil, err
	}

	cIter, err := r.repo.Log(&gogit.LogOptions{
		From:  head.Hash,
		Since: &since,
		Order: gogit.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, err
	}

	var commits []CommitInfo
	err = cIter.ForEach(func(c *object.Commit) error {
		message := c.Message
		if idx := strings.IndexByte(message, '\n'); idx != -1 {
			message = message[:idx]
		}
		message = strings.TrimRight(message, "\r")

		sha := c.Hash.String()
		commits = append(commits, CommitInfo{
			SHA:      sha,
			ShortSHA: sha[:ShortSHALength],
			When:     c.Committer.When,
			Message:  message,
			Category: Categorize(message),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return commits, nil
}

// IsAncestor reports whether sha is an ancestor of (or equal to) ofSHA.
func (r *Repository) IsAncestor(sha, ofSHA string) (bool, error) {
	if sha == ofSHA {
		return true, nil
	}

	commit, err := r.repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		return false, fmt.Errorf("resolve commit %q: %w", sha, err)
	}
	of, err := r.repo.CommitObject(plumbing.NewHash(ofSHA))
	if err != nil {
		return false, fmt.Errorf("resolve commit %q: %w", ofSHA, err)
	}

	return commit.IsAncestor(of)
}

// branchCommit resolves a branch short name to its head commit.
func (r *Repository) branchCommit(branch string) (*object.Commit, error) {
	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return nil, fmt.Errorf("resolve branch %q: %w", branch, err)
	}
	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("resolve head of %q: %w", branch, err)
	}
	return commit, nil
}

func isReachable(commit, from *object.Commit) (bool, error) {
	if commit.Hash == from.Hash {
		return true, nil
	}
	return commit.IsAncestor(from)
}
