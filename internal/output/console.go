package output

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/masmgr/changelog-go/internal/aggregation"
)

// ConsoleWriter renders the changelog to stdout with color, for reviewing
// a report without opening the output file.
type ConsoleWriter struct{}

// Write outputs the report to the console.
func (w *ConsoleWriter) Write(report *aggregation.Report, options OutputOptions) error {
	color.Green(options.Title)

	if report.TotalCommits == 0 {
		fmt.Println(NoCommitsMessage)
		return nil
	}

	fmt.Printf("Total commits: %d\n", report.TotalCommits)

	for _, dg := range report.Dates {
		fmt.Println()
		color.Cyan(dg.Date)
		for _, bg := range dg.Branches {
			color.Yellow("  %s", bg.Branch)
			for _, vg := range bg.Versions {
				fmt.Printf("    %s\n", vg.Version)
				for _, cg := range vg.Categories {
					fmt.Printf("      %s\n", cg.Category)
					for _, commit := range cg.Commits {
						fmt.Printf("      - %s (%s)\n", commit.Message, commit.ShortSHA)
					}
				}
			}
		}
	}

	return nil
}
