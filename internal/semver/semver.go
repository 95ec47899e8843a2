// Package semver parses the release-tag version grammar and defines the
// total order used when sorting versions in a report.
package semver

import (
	"fmt"
	"regexp"
	"strconv"
)

// Unknown is the sentinel version for tag names that do not parse.
const Unknown = "unknown"

// Version is a parsed three-component semantic version.
type Version struct {
	Major, Minor, Patch int
}

// String returns the dotted form, e.g. "1.2.3".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

var (
	// Tag names look like v1.2.3, optionally with a -suffix (ignored).
	tagRe = regexp.MustCompile(`^v(\d+)\.(\d+)\.(\d+)(?:-\S+)?$`)

	// Bare version strings as stored on tags and rendered in reports.
	versionRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)
)

// FromTag extracts the version string encoded in a tag name, or Unknown
// when the name does not match v<major>.<minor>.<patch>[-suffix].
func FromTag(name string) string {
	m := tagRe.FindStringSubmatch(name)
	if m == nil {
		return Unknown
	}
	v, _ := fromMatch(m)
	return v.String()
}

// Parse parses a bare "major.minor.patch" version string.
func Parse(s string) (Version, bool) {
	m := versionRe.FindStringSubmatch(s)
	if m == nil {
		return Version{}, false
	}
	return fromMatch(m)
}

func fromMatch(m []string) (Version, bool) {
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, false
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, false
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{}, false
	}
	return Version{Major: major, Minor: minor, Patch: patch}, true
}

// Less reports whether version string a sorts before b in a report.
// Parseable versions sort first, descending by numeric (major, minor,
// patch) comparison; unparseable versions ("latest", "unknown") sort after
// all parseable ones, ascending lexicographically among themselves. The
// order is total, so sorting is deterministic for any input.
func Less(a, b string) bool {
	va, okA := Parse(a)
	vb, okB := Parse(b)

	switch {
	case okA && okB:
		if va.Major != vb.Major {
			return va.Major > vb.Major
		}
		if va.Minor != vb.Minor {
			return va.Minor > vb.Minor
		}
		return va.Patch > vb.Patch
	case okA:
		return true
	case okB:
		return false
	default:
		return a < b
	}
}
