package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func main() {
	newRootCmd().Execute()
}

type rootCmd struct {
	*cobra.Command

	verbose bool
}

func newRootCmd() *rootCmd {
	c := &rootCmd{
		Command: &cobra.Command{
			Use:   "git-editor",
			Short: "rewrite commit metadata of a git repository",
			Long: `git-editor rewrites author identity, timestamps and commit messages
across a branch's history while keeping every commit's tree untouched.`,
			Args: cobra.NoArgs,
		},
	}

	c.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", c.verbose, "log per-commit rewrite progress")

	c.PersistentPreRun = func(*cobra.Command, []string) {
		if c.verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	c.AddCommand(
		newHistoryCmd().Command,
		newRewriteCmd().Command,
		newRangeCmd().Command,
		newPickCmd().Command,
	)

	return c
}
