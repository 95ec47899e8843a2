package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// BranchesCmd returns the branches command, which prints the branch
// selection the current configuration resolves to.
func BranchesCmd() *cli.Command {
	return &cli.Command{
		Name:    "branches",
		Aliases: []string{"br"},
		Usage:   "List the branches the changelog would include",
		Flags:   commonFlags(),
		Action:  branchesAction,
	}
}

func branchesAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	current, err := ctx.Reader.CurrentBranch()
	if err != nil {
		current = ""
	}

	if len(ctx.Branches) == 0 {
		fmt.Println("No branches match the configured patterns.")
		return nil
	}

	for _, branch := range ctx.Branches {
		if branch == current {
			color.Green("* %s", branch)
		} else {
			fmt.Printf("  %s\n", branch)
		}
	}
	return nil
}
