package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	giteditor "github.com/rohansen856/git-editor"
	"github.com/rohansen856/git-editor/cmd"
	"github.com/rohansen856/git-editor/edit"
)

type rangeCmd struct {
	*cobra.Command

	repoPath    string
	selector    string
	editAuthor  bool
	editEmail   bool
	editTime    bool
	editMessage bool
	spreadStart string
	spreadEnd   string
	simulate    bool
	showHistory bool
}

func newRangeCmd() *rangeCmd {
	c := &rangeCmd{
		Command: &cobra.Command{
			Use:   "range",
			Short: "edit a contiguous range of commits in the interactive grid",
			Args:  cobra.NoArgs,
		},
	}

	c.Flags().StringVarP(&c.repoPath, "repo", "r", ".", "path to the repository")
	c.Flags().StringVar(&c.selector, "range", c.selector, "1-based inclusive range, e.g. '5-11' (prompted when omitted)")
	c.Flags().BoolVar(&c.editAuthor, "edit-author", c.editAuthor, "allow editing the author name column")
	c.Flags().BoolVar(&c.editEmail, "edit-email", c.editEmail, "allow editing the author email column")
	c.Flags().BoolVar(&c.editTime, "edit-time", c.editTime, "allow editing the timestamp column")
	c.Flags().BoolVar(&c.editMessage, "edit-message", c.editMessage, "allow editing the message column")
	c.Flags().StringVar(&c.spreadStart, "spread-start", c.spreadStart, "spread the range's timestamps evenly from this time instead of opening the editor")
	c.Flags().StringVar(&c.spreadEnd, "spread-end", c.spreadEnd, "end of the even timestamp spread")
	c.MarkFlagsRequiredTogether("spread-start", "spread-end")
	c.Flags().BoolVar(&c.simulate, "simulate", c.simulate, "preview the edits without touching the repository")
	c.Flags().BoolVar(&c.showHistory, "show-history", c.showHistory, "print the rewritten history afterwards")

	c.Run = func(*cobra.Command, []string) {
		c.run()
	}

	return c
}

// spreadPlan evenly redistributes the selected commits' timestamps over the
// requested window.
func (c *rangeCmd) spreadPlan(selected []*giteditor.CommitSnapshot) (giteditor.Plan, error) {
	start, err := giteditor.ParseTime(c.spreadStart)
	if err != nil {
		return nil, err
	}

	end, err := giteditor.ParseTime(c.spreadEnd)
	if err != nil {
		return nil, err
	}

	if err := giteditor.ValidateTimeRange(start, end); err != nil {
		return nil, err
	}

	timestamps := giteditor.GenerateRangeTimestamps(start, end, len(selected))

	plan := make(giteditor.Plan, len(selected))
	for i, s := range selected {
		when := timestamps[i]
		if when.Equal(s.When) {
			continue
		}

		plan[s.Hash] = &giteditor.FieldTransform{When: &when}
	}

	return plan, nil
}

func (c *rangeCmd) run() {
	ctx := context.Background()

	repo := cmd.GetOrPanic(openRepo(c.repoPath))
	snapshots := cmd.GetOrPanic(giteditor.LoadHistory(ctx, repo))

	selector := c.selector
	if selector == "" {
		printHistory(snapshots)
		selector = cmd.GetOrPanic(cmd.Prompt("Enter range in format 'start-end' (e.g., '5-11'):"))
	}

	start, end, err := giteditor.ParseRangeSelector(selector)
	cmd.OrPanic(err)
	startIdx, endIdx, err := giteditor.ValidateRangeBounds(start, end, len(snapshots))
	cmd.OrPanic(err)

	var plan giteditor.Plan
	mode := fmt.Sprintf("Range Edit (commits %d-%d)", start, end)

	if c.spreadStart != "" {
		plan = cmd.GetOrPanic(c.spreadPlan(snapshots[startIdx : endIdx+1]))
		mode = fmt.Sprintf("Range Timestamp Spread (commits %d-%d)", start, end)
	} else {
		caps := edit.Capabilities{
			AuthorName:  c.editAuthor,
			AuthorEmail: c.editEmail,
			Timestamp:   c.editTime,
			Message:     c.editMessage,
		}

		editor := edit.New(snapshots[startIdx:endIdx+1], startIdx, caps)
		saved := cmd.GetOrPanic(editor.Run())

		if !saved {
			fmt.Println(warnStyle.Render("Operation cancelled."))
			return
		}

		plan = editor.Plan()
	}

	if len(plan) == 0 {
		fmt.Println(warnStyle.Render("No changes made."))
		return
	}

	printSimulation(giteditor.Simulate(snapshots, plan, mode))

	if c.simulate {
		return
	}

	if !cmd.Confirm("Apply these changes?") {
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
