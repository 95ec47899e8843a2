package changelog

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/masmgr/changelog-go/internal/git"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
}

func TestPipeline_Run(t *testing.T) {
	mock := &git.MockRepositoryReader{
		Ancestors: linearAncestry([]string{"m1", "m2"}),
		Tags: map[string][]git.TagInfo{
			"main": {{Version: "1.0.0", SHA: "m2", When: day(10)}},
		},
		Commits: map[string][]git.CommitInfo{
			"main":    {{SHA: "m2"}, {SHA: "m1"}},
			"develop": {{SHA: "d1"}},
		},
	}

	p := &Pipeline{
		Reader:     mock,
		Branches:   []string{"main", "develop"},
		WindowDays: 30,
		Now:        fixedNow,
	}

	got, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("commits = %d, expected 3", len(got))
	}

	// Branch order preserved: main's commits first.
	if got[0].Branch != "main" || got[1].Branch != "main" || got[2].Branch != "develop" {
		t.Fatalf("branch order = %s, %s, %s", got[0].Branch, got[1].Branch, got[2].Branch)
	}
	if got[0].Version != "1.0.0" {
		t.Errorf("main version = %q, expected 1.0.0", got[0].Version)
	}

	// Tagless branch gets the sentinel with the injected clock's date.
	if got[2].Version != VersionLatest {
		t.Errorf("develop version = %q, expected %q", got[2].Version, VersionLatest)
	}
	if !got[2].VersionDate.Equal(fixedNow()) {
		t.Errorf("develop versionDate = %v, expected %v", got[2].VersionDate, fixedNow())
	}
}

func TestPipeline_Run_BranchFailureDegrades(t *testing.T) {
	mock := &git.MockRepositoryReader{
		Commits: map[string][]git.CommitInfo{
			"main": {{SHA: "m1"}},
		},
		TagErrs: map[string]error{
			"broken": errors.New("reference not found"),
		},
	}

	var warnings []string
	p := &Pipeline{
		Reader:     mock,
		Branches:   []string{"broken", "main"},
		WindowDays: 30,
		Now:        fixedNow,
		Warnf: func(format string, args ...interface{}) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		},
	}

	got, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got) != 1 || got[0].Branch != "main" {
		t.Fatalf("result = %+v, expected only main's commit", got)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "broken") {
		t.Fatalf("warnings = %v, expected one naming the broken branch", warnings)
	}
}

func TestPipeline_Run_CommitFailureDegrades(t *testing.T) {
	mock := &git.MockRepositoryReader{
		CommitErrs: map[string]error{
			"main": errors.New("object not found"),
		},
	}

	var warnings []string
	p := &Pipeline{
		Reader:   mock,
		Branches: []string{"main"},
		Now:      fixedNow,
		Warnf: func(format string, args ...interface{}) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		},
	}

	got, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("result = %+v, expected empty", got)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, expected exactly one", warnings)
	}
}

func TestPipeline_Run_AncestryFailureAborts(t *testing.T) {
	boom := errors.New("packfile corrupt")
	mock := &git.MockRepositoryReader{
		AncestryErr: boom,
		Tags: map[string][]git.TagInfo{
			"main": {
				{Version: "2.0.0", SHA: "t2", When: day(20)},
				{Version: "1.0.0", SHA: "t1", When: day(10)},
			},
		},
		Commits: map[string][]git.CommitInfo{
			"main": {{SHA: "c1"}},
		},
	}

	p := &Pipeline{
		Reader:   mock,
		Branches: []string{"main"},
		Now:      fixedNow,
		Warnf:    func(string, ...interface{}) {},
	}

	if _, err := p.Run(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, expected wrapped %v", err, boom)
	}
}
