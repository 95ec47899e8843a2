package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/changelog-go/config"
	"github.com/masmgr/changelog-go/internal/changelog"
	"github.com/masmgr/changelog-go/internal/git"
)

// CommandContext holds common state for command execution: loaded
// configuration, the opened repository reader, and the branch selection
// after pattern expansion.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Reader   git.RepositoryReader
	Branches []string
}

// NewCommandContext creates a context from CLI flags. It loads the
// configuration, opens the repository, and expands branch patterns against
// the repository's branch list.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	repoPath := c.String("repo")
	reader, err := git.NewRepository(git.ReadOptions{RepoPath: repoPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	available, err := reader.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	return &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		Reader:   reader,
		Branches: git.ExpandBranchPatterns(cfg.Branches, available),
	}, nil
}

// Pipeline builds the extraction pipeline for the context's branch selection.
func (ctx *CommandContext) Pipeline() *changelog.Pipeline {
	warn := color.New(color.FgYellow)
	return &changelog.Pipeline{
		Reader:     ctx.Reader,
		Branches:   ctx.Branches,
		WindowDays: ctx.Config.WindowDays,
		Warnf: func(format string, args ...interface{}) {
			warn.Fprintf(color.Error, format+"\n", args...)
		},
	}
}
