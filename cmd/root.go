package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/changelog-go/config"
	"github.com/masmgr/changelog-go/internal/output"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "changelog",
		Usage:   "Generate a changelog from release-branch history",
		Version: "1.0.0",
		Commands: []*cli.Command{
			GenerateCmd(),
			BranchesCmd(),
		},
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		),
		// Running without a subcommand generates the changelog with the
		// configured defaults.
		Action: func(c *cli.Context) error {
			return GenerateCmd().Action(c)
		},
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringSliceFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch name or glob pattern to include (can be specified multiple times)",
		},
		&cli.IntFlag{
			Name:    "days",
			Aliases: []string{"d"},
			Usage:   "Trailing window in days for commit inclusion",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: configured outputPath; \"-\" for stdout)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (markdown, console, json)",
			Value:   "markdown",
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: "Document title",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "console":
		return output.FormatConsole
	case "json":
		return output.FormatJSON
	default:
		return output.FormatMarkdown
	}
}

// loadConfig loads configuration from file or defaults, applying flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if branches := c.StringSlice("branch"); len(branches) > 0 {
		cfg.Branches = branches
	}
	if days := c.Int("days"); days > 0 {
		cfg.WindowDays = days
	}
	if out := c.String("output"); out != "" {
		cfg.OutputPath = out
	}
	if title := c.String("title"); title != "" {
		cfg.Title = title
	}

	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
