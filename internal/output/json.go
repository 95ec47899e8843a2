package output

import (
	"encoding/json"
	"time"

	"github.com/masmgr/changelog-go/internal/aggregation"
)

// JSONWriter writes the grouped report as JSON, for scripting against the
// changelog without parsing Markdown.
type JSONWriter struct{}

// JSONReport is the JSON output envelope.
type JSONReport struct {
	Title        string     `json:"title"`
	GeneratedAt  string     `json:"generatedAt"`
	TotalCommits int        `json:"totalCommits"`
	Dates        []JSONDate `json:"dates"`
}

// JSONDate is the JSON output structure for one calendar day.
type JSONDate struct {
	Date     string       `json:"date"`
	Branches []JSONBranch `json:"branches"`
}

// JSONBranch is the JSON output structure for one branch within a day.
type JSONBranch struct {
	Branch   string        `json:"branch"`
	Versions []JSONVersion `json:"versions"`
}

// JSONVersion is the JSON output structure for one version within a branch.
type JSONVersion struct {
	Version    string         `json:"version"`
	Categories []JSONCategory `json:"categories"`
}

// JSONCategory is the JSON output structure for one category within a version.
type JSONCategory struct {
	Category string       `json:"category"`
	Commits  []JSONCommit `json:"commits"`
}

// JSONCommit is the JSON output structure for a single commit.
type JSONCommit struct {
	SHA      string `json:"sha"`
	ShortSHA string `json:"shortSha"`
	Date     string `json:"date"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Branch   string `json:"branch"`
	Version  string `json:"version"`
}

// Write outputs the report as indented JSON.
func (w *JSONWriter) Write(report *aggregation.Report, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	generatedAt := options.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	envelope := JSONReport{
		Title:        options.Title,
		GeneratedAt:  generatedAt.Format(time.RFC3339),
		TotalCommits: report.TotalCommits,
		Dates:        make([]JSONDate, 0, len(report.Dates)),
	}

	for _, dg := range report.Dates {
		jd := JSONDate{Date: dg.Date, Branches: make([]JSONBranch, 0, len(dg.Branches))}
		for _, bg := range dg.Branches {
			jb := JSONBranch{Branch: bg.Branch, Versions: make([]JSONVersion, 0, len(bg.Versions))}
			for _, vg := range bg.Versions {
				jv := JSONVersion{Version: vg.Version, Categories: make([]JSONCategory, 0, len(vg.Categories))}
				for _, cg := range vg.Categories {
					jc := JSONCategory{Category: cg.Category, Commits: make([]JSONCommit, 0, len(cg.Commits))}
					for _, commit := range cg.Commits {
						jc.Commits = append(jc.Commits, JSONCommit{
							SHA:      commit.SHA,
							ShortSHA: commit.ShortSHA,
							Date:     commit.When.Format(aggregation.DateLayout),
							Message:  commit.Message,
							Category: commit.Category,
							Branch:   commit.Branch,
							Version:  commit.Version,
						})
					}
					jv.Categories = append(jv.Categories, jc)
				}
				jb.Versions = append(jb.Versions, jv)
			}
			jd.Branches = append(jd.Branches, jb)
		}
		envelope.Dates = append(envelope.Dates, jd)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(envelope)
}
