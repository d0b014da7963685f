package main

import (
	"context"

	"github.com/spf13/cobra"

	giteditor "github.com/rohansen856/git-editor"
	"github.com/rohansen856/git-editor/cmd"
)

type historyCmd struct {
	*cobra.Command

	repoPath string
}

func newHistoryCmd() *historyCmd {
	c := &historyCmd{
		Command: &cobra.Command{
			Use:   "history",
			Short: "print the current branch's commit history with summary statistics",
			Args:  cobra.NoArgs,
		},
	}

	c.Flags().StringVarP(&c.repoPath, "repo", "r", ".", "path to the repository")

	c.Run = func(*cobra.Command, []string) {
		c.run()
	}

	return c
}

func (c *historyCmd) run() {
	repo := cmd.GetOrPanic(openRepo(c.repoPath))
	snapshots := cmd.GetOrPanic(giteditor.LoadHistory(context.Background(), repo))

	printStats(giteditor.ComputeStats(snapshots))
	printHistory(snapshots)
}
