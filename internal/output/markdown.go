package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/masmgr/changelog-go/internal/aggregation"
)

// MarkdownWriter renders the changelog as a Markdown heading hierarchy:
// document title, one section per date, per branch (upper-cased), per
// version, then a bold category label and one list line per commit.
type MarkdownWriter struct{}

// Write outputs the report as Markdown.
func (w *MarkdownWriter) Write(report *aggregation.Report, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	return renderMarkdown(out, report, options.Title)
}

func renderMarkdown(out io.Writer, report *aggregation.Report, title string) error {
	if report.TotalCommits == 0 {
		_, err := fmt.Fprintln(out, NoCommitsMessage)
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", title)

	for _, dg := range report.Dates {
		fmt.Fprintf(&b, "\n## %s\n", dg.Date)
		for _, bg := range dg.Branches {
			fmt.Fprintf(&b, "\n### %s\n", strings.ToUpper(bg.Branch))
			for _, vg := range bg.Versions {
				fmt.Fprintf(&b, "\n#### %s\n", vg.Version)
				for _, cg := range vg.Categories {
					fmt.Fprintf(&b, "\n**%s**\n\n", cg.Category)
					for _, commit := range cg.Commits {
						fmt.Fprintf(&b, "- %s (%s)\n", commit.Message, commit.ShortSHA)
					}
				}
			}
		}
	}

	_, err := io.WriteString(out, b.String())
	return err
}
