package giteditor

import (
	"fmt"
	"time"
)

// SimulationStats aggregates what a planned rewrite would touch.
type SimulationStats struct {
	TotalCommits      int
	CommitsToChange   int
	AuthorsChanged    int
	EmailsChanged     int
	TimestampsChanged int
	MessagesChanged   int
	DateRangeStart    time.Time
	DateRangeEnd      time.Time
}

// SimulationResult is the outcome of a dry run: the per-commit planned
// changes in history order plus the aggregate stats.
type SimulationResult struct {
	Changes []*PlannedChange
	Stats   SimulationStats
	Mode    string
}

// Simulate computes the changes and summary statistics a rewrite under the
// plan would produce. It never touches the repository.
func Simulate(snapshots []*CommitSnapshot, plan Plan, mode string) *SimulationResult {
	changes := PlanChanges(snapshots, plan)

	stats := SimulationStats{
		TotalCommits: len(snapshots),
	}

	for i, c := range snapshots {
		if i == 0 || c.When.Before(stats.DateRangeStart) {
			stats.DateRangeStart = c.When
		}
		if i == 0 || c.When.After(stats.DateRangeEnd) {
			stats.DateRangeEnd = c.When
		}
	}

	for _, change := range changes {
		if !change.HasChanges() {
			continue
		}

		stats.CommitsToChange += 1

		t := change.Transform
		if t.AuthorName != nil {
			stats.AuthorsChanged += 1
		}
		if t.AuthorEmail != nil {
			stats.EmailsChanged += 1
		}
		if t.When != nil {
			stats.TimestampsChanged += 1
		}
		if t.Message != nil {
			stats.MessagesChanged += 1
		}
	}

	return &SimulationResult{
		Changes: changes,
		Stats:   stats,
		Mode:    mode,
	}
}

// SummaryLines renders the overrides that actually differ from the original
// values, one line per field.
func (p *PlannedChange) SummaryLines() []string {
	if !p.HasChanges() {
		return nil
	}

	lines := make([]string, 0, 4)
	t := p.Transform
	orig := p.Snapshot

	if t.AuthorName != nil && *t.AuthorName != orig.AuthorName {
		lines = append(lines, fmt.Sprintf("Author: %s -> %s", orig.AuthorName, *t.AuthorName))
	}
	if t.AuthorEmail != nil && *t.AuthorEmail != orig.AuthorEmail {
		lines = append(lines, fmt.Sprintf("Email: %s -> %s", orig.AuthorEmail, *t.AuthorEmail))
	}
	if t.When != nil && !t.When.Equal(orig.When) {
		lines = append(lines, fmt.Sprintf("Date: %s -> %s", FormatTime(orig.When), FormatTime(*t.When)))
	}
	if t.Message != nil && *t.Message != orig.Message {
		lines = append(lines, fmt.Sprintf("Message: %s -> %s", orig.Summary(), firstLine(*t.Message)))
	}

	return lines
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}

	return s
}
