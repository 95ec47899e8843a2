// Package aggregation merges version-assigned commits from all branches
// into the nested report structure the writers render.
package aggregation

import (
	"sort"
	"time"

	"github.com/masmgr/changelog-go/internal/changelog"
	"github.com/masmgr/changelog-go/internal/semver"
)

// DateLayout is the key format for the report's date grouping level.
const DateLayout = "2006-01-02"

// Report is the fully grouped changelog, outermost level first:
// date, branch, version, category.
type Report struct {
	TotalCommits int
	Dates        []DateGroup
}

// DateGroup holds one calendar day of commits.
type DateGroup struct {
	Date     string // DateLayout form of When
	When     time.Time
	Branches []BranchGroup
}

// BranchGroup holds one branch's commits within a day.
type BranchGroup struct {
	Branch   string
	Versions []VersionGroup
}

// VersionGroup holds one release version's commits within a branch.
type VersionGroup struct {
	Version    string
	Categories []CategoryGroup
}

// CategoryGroup holds one category's commits within a version.
type CategoryGroup struct {
	Category string
	Commits  []changelog.VersionedCommit
}

// Group builds the nested report from the concatenated per-branch commit
// lists. Grouping keys are exact matches on the commit's own fields.
//
// Imposed orders: dates descending by calendar value; branches within a
// date in order of first appearance; versions within a branch descending
// by numeric semantic-version comparison (unparseable versions last);
// categories within a version ascending lexicographic; commits within a
// category in arrival order.
func Group(commits []changelog.VersionedCommit) *Report {
	report := &Report{TotalCommits: len(commits)}

	dateIdx := make(map[string]int)
	branchIdx := make(map[string]map[string]int)
	versionIdx := make(map[string]map[string]map[string]int)
	categoryIdx := make(map[string]map[string]map[string]map[string]int)

	for _, commit := range commits {
		date := commit.When.Format(DateLayout)

		di, ok := dateIdx[date]
		if !ok {
			di = len(report.Dates)
			dateIdx[date] = di
			when, _ := time.Parse(DateLayout, date)
			report.Dates = append(report.Dates, DateGroup{Date: date, When: when})
			branchIdx[date] = make(map[string]int)
			versionIdx[date] = make(map[string]map[string]int)
			categoryIdx[date] = make(map[string]map[string]map[string]int)
		}
		dg := &report.Dates[di]

		bi, ok := branchIdx[date][commit.Branch]
		if !ok {
			bi = len(dg.Branches)
			branchIdx[date][commit.Branch] = bi
			dg.Branches = append(dg.Branches, BranchGroup{Branch: commit.Branch})
			versionIdx[date][commit.Branch] = make(map[string]int)
			categoryIdx[date][commit.Branch] = make(map[string]map[string]int)
		}
		bg := &dg.Branches[bi]

		vi, ok := versionIdx[date][commit.Branch][commit.Version]
		if !ok {
			vi = len(bg.Versions)
			versionIdx[date][commit.Branch][commit.Version] = vi
			bg.Versions = append(bg.Versions, VersionGroup{Version: commit.Version})
			categoryIdx[date][commit.Branch][commit.Version] = make(map[string]int)
		}
		vg := &bg.Versions[vi]

		ci, ok := categoryIdx[date][commit.Branch][commit.Version][commit.Category]
		if !ok {
			ci = len(vg.Categories)
			categoryIdx[date][commit.Branch][commit.Version][commit.Category] = ci
			vg.Categories = append(vg.Categories, CategoryGroup{Category: commit.Category})
		}
		cg := &vg.Categories[ci]

		cg.Commits = append(cg.Commits, commit)
	}

	sort.Slice(report.Dates, func(i, j int) bool {
		return report.Dates[i].When.After(report.Dates[j].When)
	})

	for di := range report.Dates {
		for bi := range report.Dates[di].Branches {
			bg := &report.Dates[di].Branches[bi]
			sort.Slice(bg.Versions, func(i, j int) bool {
				return semver.Less(bg.Versions[i].Version, bg.Versions[j].Version)
			})
			for vi := range bg.Versions {
				vg := &bg.Versions[vi]
				sort.Slice(vg.Categories, func(i, j int) bool {
					return vg.Categories[i].Category < vg.Categories[j].Category
				})
			}
		}
	}

	return report
}
