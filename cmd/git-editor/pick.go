package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	giteditor "github.com/rohansen856/git-editor"
	"github.com/rohansen856/git-editor/cmd"
)

type pickCmd struct {
	*cobra.Command

	repoPath    string
	commit      string
	index       int
	name        string
	email       string
	timestamp   string
	message     string
	simulate    bool
	showHistory bool
}

func newPickCmd() *pickCmd {
	c := &pickCmd{
		Command: &cobra.Command{
			Use:   "pick",
			Short: "edit the metadata of one specific commit",
			Args:  cobra.NoArgs,
		},
	}

	c.Flags().StringVarP(&c.repoPath, "repo", "r", ".", "path to the repository")
	c.Flags().StringVar(&c.commit, "commit", c.commit, "full hash of the commit to edit")
	c.Flags().IntVar(&c.index, "index", c.index, "1-based position of the commit to edit (prompted when omitted)")
	c.Flags().StringVarP(&c.name, "name", "n", c.name, "new author name")
	c.Flags().StringVarP(&c.email, "email", "e", c.email, "new author email")
	c.Flags().StringVarP(&c.timestamp, "time", "t", c.timestamp, "new timestamp (YYYY-MM-DD HH:MM:SS)")
	c.Flags().StringVarP(&c.message, "message", "m", c.message, "new commit message")
	c.Flags().BoolVar(&c.simulate, "simulate", c.simulate, "preview the change without touching the repository")
	c.Flags().BoolVar(&c.showHistory, "show-history", c.showHistory, "print the rewritten history afterwards")

	c.Run = func(*cobra.Command, []string) {
		c.run()
	}

	return c
}

func (c *pickCmd) selectTarget(snapshots []*giteditor.CommitSnapshot) (*giteditor.CommitSnapshot, error) {
	if c.commit != "" {
		hash, err := giteditor.DecodeHashHex(c.commit)
		if err != nil {
			return nil, err
		}

		for _, s := range snapshots {
			if s.Hash == hash {
				return s, nil
			}
		}

		return nil, fmt.Errorf("commit %s not found on the current branch", c.commit)
	}

	index := c.index
	if index == 0 {
		printHistory(snapshots)

		answer, err := cmd.Prompt("Select commit number to edit:")
		if err != nil {
			return nil, err
		}

		index, err = strconv.Atoi(answer)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", answer)
		}
	}

	if index < 1 || index > len(snapshots) {
		return nil, fmt.Errorf("selection out of range, available commits: 1-%d", len(snapshots))
	}

	return snapshots[index-1], nil
}

func (c *pickCmd) transform() (*giteditor.FieldTransform, error) {
	t := &giteditor.FieldTransform{}

	if c.Flags().Changed("name") {
		if strings.TrimSpace(c.name) == "" {
			return nil, giteditor.ErrEmptyAuthorName
		}
		t.AuthorName = &c.name
	}
	if c.Flags().Changed("email") {
		if !strings.Contains(c.email, "@") {
			return nil, giteditor.ErrInvalidEmail
		}
		t.AuthorEmail = &c.email
	}
	if c.Flags().Changed("time") {
		when, err := giteditor.ParseTime(c.timestamp)
		if err != nil {
			return nil, err
		}
		t.When = &when
	}
	if c.Flags().Changed("message") {
		if strings.TrimSpace(c.message) == "" {
			return nil, giteditor.ErrEmptyMessage
		}
		t.Message = &c.message
	}

	return t, nil
}

func (c *pickCmd) run() {
	ctx := context.Background()

	repo := cmd.GetOrPanic(openRepo(c.repoPath))
	snapshots := cmd.GetOrPanic(giteditor.LoadHistory(ctx, repo))

	target := cmd.GetOrPanic(c.selectTarget(snapshots))
	cmd.OrPanic(printCommitDetails(repo, target))

	transform := cmd.GetOrPanic(c.transform())
	if transform.IsZero() {
		fmt.Println(warnStyle.Render("Nothing to change: pass --name, --email, --time or --message."))
		return
	}

	plan := giteditor.SinglePlan(target.Hash, transform)
	printSimulation(giteditor.Simulate(snapshots, plan, "Specific Commit Edit"))

	if c.simulate {
		return
	}

	if !cmd.Confirm("Proceed with changes?") {
		fmt.Println(warnStyle.Render("Operation cancelled."))
		return
	}

	tip := cmd.GetOrPanic(giteditor.Rewrite(ctx, repo, plan))

	head := cmd.GetOrPanic(repo.Head())
	fmt.Printf("%s '%s' -> %s\n",
		okStyle.Render("Updated branch"),
		head.Name().Short(),
		hashStyle.Render(tip.String()[:8]))

	if c.showHistory {
		rewritten := cmd.GetOrPanic(giteditor.LoadHistory(ctx, repo))
		printStats(giteditor.ComputeStats(rewritten))
		printHistory(rewritten)
	}
}
