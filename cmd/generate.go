package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/changelog-go/internal/aggregation"
	"github.com/masmgr/changelog-go/internal/output"
)

// GenerateCmd returns the generate command.
func GenerateCmd() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Generate the changelog document",
		Flags:   commonFlags(),
		Action:  generateAction,
	}
}

func generateAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	commits, err := ctx.Pipeline().Run()
	if err != nil {
		return err
	}

	report := aggregation.Group(commits)

	opts := output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		OutputPath: ctx.Config.OutputPath,
		Title:      ctx.Config.Title,
	}
	if opts.OutputPath == "-" {
		opts.OutputPath = ""
	}
	// Console output always goes to the terminal, never to the output file.
	if opts.Format == output.FormatConsole {
		opts.OutputPath = ""
	}

	writer := output.NewReportWriter(opts.Format)
	if err := writer.Write(report, opts); err != nil {
		return err
	}

	if opts.OutputPath != "" {
		fmt.Printf("Wrote %d commits to %s\n", report.TotalCommits, opts.OutputPath)
	}
	return nil
}
