package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-git/go-git/v5"

	giteditor "github.com/rohansen856/git-editor"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	hashStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dateStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	authorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	numberStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

func rule(n int) string {
	return ruleStyle.Render(strings.Repeat("=", n))
}

func printCommitLine(i int, c *giteditor.CommitSnapshot) {
	fmt.Printf("%3d. %s %s %s %s\n",
		i+1,
		hashStyle.Render(c.ShortHash),
		dateStyle.Render(giteditor.FormatTime(c.When)),
		authorStyle.Render(c.AuthorName),
		c.Summary(),
	)
}

func printHistory(snapshots []*giteditor.CommitSnapshot) {
	fmt.Println()
	fmt.Println(headingStyle.Render("Commit History:"))
	fmt.Println(rule(80))

	for i, c := range snapshots {
		printCommitLine(i, c)
	}

	fmt.Println(rule(80))
}

func printStats(stats *giteditor.HistoryStats) {
	fmt.Println()
	fmt.Println(headingStyle.Render("Commit History Summary:"))
	fmt.Println(rule(60))
	fmt.Printf("%s: %s\n", labelStyle.Render("Total Commits"), numberStyle.Render(fmt.Sprintf("%d", stats.TotalCommits)))
	fmt.Printf("%s: %s days\n", labelStyle.Render("Date Span"), numberStyle.Render(fmt.Sprintf("%d", stats.SpanDays())))
	fmt.Printf("%s: %s to %s\n",
		labelStyle.Render("Date Range"),
		dateStyle.Render(giteditor.FormatTime(stats.Earliest)),
		dateStyle.Render(giteditor.FormatTime(stats.Latest)))
	fmt.Printf("%s: %s\n", labelStyle.Render("Unique Authors"), numberStyle.Render(fmt.Sprintf("%d", len(stats.Authors))))
	if len(stats.Authors) <= 5 {
		fmt.Printf("%s: %s\n", labelStyle.Render("Authors"), authorStyle.Render(strings.Join(stats.Authors, ", ")))
	}
	fmt.Println(rule(60))
}

func printCommitDetails(repo *git.Repository, c *giteditor.CommitSnapshot) error {
	fmt.Println()
	fmt.Println(headingStyle.Render("Selected Commit Details:"))
	fmt.Println(rule(80))

	fmt.Printf("%s: %s\n", labelStyle.Render("Hash"), hashStyle.Render(c.Hash.String()))
	fmt.Printf("%s: %s\n", labelStyle.Render("Author"), authorStyle.Render(fmt.Sprintf("%s <%s>", c.AuthorName, c.AuthorEmail)))
	fmt.Printf("%s: %s\n", labelStyle.Render("Date"), dateStyle.Render(giteditor.FormatTime(c.When)))
	fmt.Printf("%s: %d\n", labelStyle.Render("Parent Count"), c.ParentCount)

	fmt.Println()
	fmt.Println(labelStyle.Render("Message:"))
	fmt.Println(c.Message)

	if c.ParentCount > 0 {
		commit, err := repo.CommitObject(c.Hash)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(labelStyle.Render("Parent Commits:"))
		for i := 0; i < c.ParentCount; i++ {
			parent, err := commit.Parent(i)
			if err != nil {
				return err
			}
			fmt.Printf("  %d: %s - %s\n",
				i+1,
				hashStyle.Render(parent.Hash.String()[:8]),
				giteditor.NewCommitSnapshot(parent).Summary())
		}
	}

	fmt.Println(rule(80))

	return nil
}

func printSimulation(result *giteditor.SimulationResult) {
	fmt.Println()
	fmt.Println(headingStyle.Render("SIMULATION SUMMARY"))
	fmt.Println(rule(50))

	fmt.Printf("%s: %s\n", labelStyle.Render("Operation Mode"), numberStyle.Render(result.Mode))
	fmt.Printf("%s: %d\n", labelStyle.Render("Total Commits"), result.Stats.TotalCommits)
	fmt.Printf("%s: %d\n", labelStyle.Render("Commits to Change"), result.Stats.CommitsToChange)

	if result.Stats.CommitsToChange > 0 {
		fmt.Println()
		fmt.Println(labelStyle.Render("Changes Breakdown:"))
		for _, line := range []struct {
			count int
			what  string
		}{
			{result.Stats.AuthorsChanged, "author names"},
			{result.Stats.EmailsChanged, "author emails"},
			{result.Stats.TimestampsChanged, "timestamps"},
			{result.Stats.MessagesChanged, "messages"},
		} {
			if line.count > 0 {
				fmt.Printf("  - %s commits will have %s changed\n",
					numberStyle.Render(fmt.Sprintf("%d", line.count)), line.what)
			}
		}
	}

	if !result.Stats.DateRangeStart.IsZero() {
		fmt.Println()
		fmt.Println(labelStyle.Render("Date Range:"))
		fmt.Printf("  %s -> %s\n",
			dateStyle.Render(giteditor.FormatTime(result.Stats.DateRangeStart)),
			dateStyle.Render(giteditor.FormatTime(result.Stats.DateRangeEnd)))
	}

	for _, change := range result.Changes {
		lines := change.SummaryLines()
		if len(lines) == 0 {
			continue
		}

		fmt.Println()
		fmt.Printf("%s (%s)\n",
			labelStyle.Render("Commit "+change.Snapshot.ShortHash),
			dateStyle.Render(giteditor.FormatTime(change.Snapshot.When)))
		for _, line := range lines {
			fmt.Printf("  %s\n", line)
		}
	}

	if result.Stats.CommitsToChange == 0 {
		fmt.Println()
		fmt.Println(okStyle.Render("No changes would be made with current parameters."))
	} else {
		fmt.Println()
		fmt.Println(warnStyle.Render("This is a simulation - no actual changes have been made."))
	}
}
