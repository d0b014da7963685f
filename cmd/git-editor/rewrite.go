package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	giteditor "github.com/rohansen856/git-editor"
	"github.com/rohansen856/git-editor/cmd"
)

type rewriteCmd struct {
	*cobra.Command

	repoPath    string
	configPath  string
	name        string
	email       string
	start       string
	end         string
	exclude     []string
	simulate    bool
	showHistory bool
}

func newRewriteCmd() *rewriteCmd {
	c := &rewriteCmd{
		Command: &cobra.Command{
			Use:   "rewrite",
			Short: "rewrite the whole history with a new author and generated timestamps",
			Args:  cobra.NoArgs,
		},
	}

	c.Flags().StringVarP(&c.repoPath, "repo", "r", ".", "path to the repository")
	c.Flags().StringVarP(&c.configPath, "config", "c", c.configPath, "path to the defaults config")
	c.Flags().StringVarP(&c.name, "name", "n", c.name, "new author name")
	c.Flags().StringVarP(&c.email, "email", "e", c.email, "new author email")
	c.Flags().StringVarP(&c.start, "start", "s", c.start, "start timestamp (YYYY-MM-DD HH:MM:SS)")
	c.Flags().StringVarP(&c.end, "end", "E", c.end, "end timestamp (YYYY-MM-DD HH:MM:SS)")
	c.MarkFlagRequired("start")
	c.MarkFlagRequired("end")
	c.Flags().StringArrayVarP(&c.exclude, "exclude", "x", c.exclude, "full hash of a commit to leave untouched (repeatable)")
	c.Flags().BoolVar(&c.simulate, "simulate", c.simulate, "preview the changes without touching the repository")
	c.Flags().BoolVar(&c.showHistory, "show-history", c.showHistory, "print the rewritten history afterwards")

	c.Run = func(*cobra.Command, []string) {
		c.run()
	}

	return c
}

func (c *rewriteCmd) run() {
	ctx := context.Background()

	name, email, err := resolveIdentity(c.configPath, c.name, c.email)
	cmd.OrPanic(err)
	cmd.OrPanic(giteditor.ValidateIdentity(name, email))

	start := cmd.GetOrPanic(giteditor.ParseTime(c.start))
	end := cmd.GetOrPanic(giteditor.ParseTime(c.end))
	cmd.OrPanic(giteditor.ValidateTimeRange(start, end))

	repo := cmd.GetOrPanic(openRepo(c.repoPath))
	snapshots := cmd.GetOrPanic(giteditor.LoadHistory(ctx, repo))

	timestamps := cmd.GetOrPanic(giteditor.GenerateTimestamps(start, end, len(snapshots)))
	plan := cmd.GetOrPanic(giteditor.FullRewritePlan(snapshots, name, email, timestamps))

	if len(c.exclude) > 0 {
		plan.Exclude(cmd.GetOrPanic(giteditor.NewHashSetFromStrings(c.exclude...)))
	}

	if c.simulate {
		printSimulation(giteditor.Simulate(snapshots, plan, "Full Repository Rewrite"))
		return
	}

	tip := cmd.GetOrPanic(giteditor.Rewrite(ctx, repo, plan))

	head := cmd.GetOrPanic(repo.Head())
	fmt.Printf("%s '%s' -> %s\n",
		okStyle.Render("Rewritten branch"),
		head.Name().Short(),
		hashStyle.Render(tip.String()))

	if c.showHistory {
		rewritten := cmd.GetOrPanic(giteditor.LoadHistory(ctx, repo))
		printStats(giteditor.ComputeStats(rewritten))
		printHistory(rewritten)
	}
}
